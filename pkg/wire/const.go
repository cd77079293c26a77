package wire

import (
	"github.com/wavesplatform/gowire/pkg/errs"
	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
)

// constCodec builds a Codec for a compile-time sentinel of underlying
// type U: encode always writes sentinel regardless of the value it is
// given; decode reads a U and fails errs.ConstMismatch unless it
// equals sentinel.
func constCodec[U comparable](inner *Codec[U], sentinel U) *Codec[U] {
	return &Codec[U]{
		EncodeTo: func(s *serializer.Serializer, _ U) error {
			return inner.EncodeTo(s, sentinel)
		},
		DecodeFrom: func(d *deserializer.Deserializer) (U, error) {
			got, err := inner.DecodeFrom(d)
			if err != nil {
				return got, err
			}
			if got != sentinel {
				return got, errs.NewConstMismatch(sentinel, got)
			}
			return got, nil
		},
		SizeOn: inner.SizeOn,
	}
}

// ConstUint8 builds a Codec for a compile-time byte sentinel.
func ConstUint8(sentinel uint8) *Codec[uint8] { return constCodec(UInt8, sentinel) }

// ConstUint16 builds a Codec for a compile-time u16 sentinel.
func ConstUint16(sentinel uint16) *Codec[uint16] { return constCodec(UInt16, sentinel) }

// ConstUint32 builds a Codec for a compile-time u32 sentinel.
func ConstUint32(sentinel uint32) *Codec[uint32] { return constCodec(UInt32, sentinel) }

// ConstUint64 builds a Codec for a compile-time u64 sentinel.
func ConstUint64(sentinel uint64) *Codec[uint64] { return constCodec(UInt64, sentinel) }
