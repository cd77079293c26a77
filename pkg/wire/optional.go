package wire

import (
	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// Option is the decoded shape of an OptionalField: Valid reports
// whether the bit was set, in which case Value holds the payload.
type Option[T any] struct {
	Valid bool
	Value T
}

// Some builds a present Option, the value an encoder passes for a
// field it wants to set the mask bit for.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// OptionalFieldSet is the mask token codec: it carries no payload of
// its own, only the side effect of opening a new governing mask on
// whichever traversal engine it runs against. A record places it via
// MaskField at the position the mask's two bytes belong on the wire.
var OptionalFieldSet = &Codec[struct{}]{
	EncodeTo:   func(s *serializer.Serializer, _ struct{}) error { return s.BeginOptionalFieldSet() },
	DecodeFrom: func(d *deserializer.Deserializer) (struct{}, error) { return struct{}{}, d.BeginOptionalFieldSet() },
	SizeOn:     func(z *sizer.Sizer) error { return z.BeginOptionalFieldSet() },
}

// OptionalField builds a Codec for a field governed by the nearest
// preceding OptionalFieldSet: bit selects this field's position in
// that mask. When the value is absent, encode writes nothing at all
// (not even a placeholder) and leaves the bit clear; decode and size
// consult the mask instead of reading the wire to learn presence.
func OptionalField[T any](bit int, inner *Codec[T]) *Codec[Option[T]] {
	return &Codec[Option[T]]{
		EncodeTo: func(s *serializer.Serializer, v Option[T]) error {
			if !v.Valid {
				return nil
			}
			if err := s.SetOptionalBit(bit); err != nil {
				return err
			}
			return inner.EncodeTo(s, v.Value)
		},
		DecodeFrom: func(d *deserializer.Deserializer) (Option[T], error) {
			present, err := d.TestOptionalBit(bit)
			if err != nil {
				return Option[T]{}, err
			}
			if !present {
				return Option[T]{}, nil
			}
			val, err := inner.DecodeFrom(d)
			if err != nil {
				return Option[T]{}, err
			}
			return Option[T]{Valid: true, Value: val}, nil
		},
		SizeOn: func(z *sizer.Sizer) error {
			present, err := z.TestOptionalBit(bit)
			if err != nil {
				return err
			}
			if !present {
				return nil
			}
			return inner.SizeOn(z)
		},
	}
}
