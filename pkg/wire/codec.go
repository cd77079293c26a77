// Package wire is the wire-kind algebra: a closed set of serializable
// shapes, each realized as a Codec composed from the byte-order,
// mask, and cursor primitives in pkg/libs and pkg/wire/mask. A record
// description is a static composition of Codec values built once, at
// init time, and reused across every encode/decode/measure call.
package wire

import (
	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// Codec is the shared shape every wire-kind implements: a stateless
// triple of functions describing how a T is written, read, and
// measured. The three traversal engines (encoder, decoder, sizer)
// stay dumb byte cursors; a Codec is what teaches them a particular T.
type Codec[T any] struct {
	// EncodeTo writes value's wire form to s.
	EncodeTo func(s *serializer.Serializer, value T) error
	// DecodeFrom reads a T's wire form from d.
	DecodeFrom func(d *deserializer.Deserializer) (T, error)
	// SizeOn accounts for a T already present at the start of z's
	// remaining buffer, advancing z past it.
	SizeOn func(z *sizer.Sizer) error
}

// Encode writes value using codec into buf, starting at its origin,
// and returns the unwritten remainder of buf.
func Encode[T any](buf []byte, codec *Codec[T], value T) ([]byte, error) {
	s := serializer.New(buf)
	if err := codec.EncodeTo(s, value); err != nil {
		return nil, err
	}
	return s.Remainder(), nil
}

// Decode reads a T using codec from buf, starting at its origin, and
// returns the value together with the unconsumed remainder of buf.
func Decode[T any](buf []byte, codec *Codec[T]) (T, []byte, error) {
	d := deserializer.NewDeserializer(buf)
	v, err := codec.DecodeFrom(d)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	return v, d.Rest(), nil
}

// Measure computes the exact on-wire length of the T already present
// at buf's origin, without materializing it.
func Measure[T any](buf []byte, codec *Codec[T]) (int, error) {
	z := sizer.New(buf)
	if err := codec.SizeOn(z); err != nil {
		return 0, err
	}
	return z.N(), nil
}
