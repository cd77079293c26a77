package wire

import (
	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// EnumUint8 builds a Codec for an enum type E whose underlying integer
// is a single byte. Decoding never validates the result against a
// declared range: an out-of-range byte simply produces an E with an
// undefined tag, matching the wire format's unchecked-cast semantics.
func EnumUint8[E ~uint8]() *Codec[E] {
	return &Codec[E]{
		EncodeTo:   func(s *serializer.Serializer, v E) error { return s.Uint8(uint8(v)) },
		DecodeFrom: func(d *deserializer.Deserializer) (E, error) { u, err := d.Uint8(); return E(u), err },
		SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(1) },
	}
}

// EnumUint16 builds a Codec for an enum type E whose underlying integer
// is a big-endian u16. See EnumUint8 for the unchecked-cast semantics.
func EnumUint16[E ~uint16]() *Codec[E] {
	return &Codec[E]{
		EncodeTo:   func(s *serializer.Serializer, v E) error { return s.Uint16(uint16(v)) },
		DecodeFrom: func(d *deserializer.Deserializer) (E, error) { u, err := d.Uint16(); return E(u), err },
		SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(2) },
	}
}

// EnumUint32 builds a Codec for an enum type E whose underlying integer
// is a big-endian u32. See EnumUint8 for the unchecked-cast semantics.
func EnumUint32[E ~uint32]() *Codec[E] {
	return &Codec[E]{
		EncodeTo:   func(s *serializer.Serializer, v E) error { return s.Uint32(uint32(v)) },
		DecodeFrom: func(d *deserializer.Deserializer) (E, error) { u, err := d.Uint32(); return E(u), err },
		SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(4) },
	}
}

// EnumUint64 builds a Codec for an enum type E whose underlying integer
// is a big-endian u64. See EnumUint8 for the unchecked-cast semantics.
func EnumUint64[E ~uint64]() *Codec[E] {
	return &Codec[E]{
		EncodeTo:   func(s *serializer.Serializer, v E) error { return s.Uint64(uint64(v)) },
		DecodeFrom: func(d *deserializer.Deserializer) (E, error) { u, err := d.Uint64(); return E(u), err },
		SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(8) },
	}
}
