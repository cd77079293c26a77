package wire

import (
	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// Field is one entry in a record's ordered field list, type-erased
// over the field's own T so a Record can hold a slice of
// heterogeneously-typed fields. There is no reflection macro here (the
// source repo's approach); a record simply lists its fields once, in
// declared order, each carrying its own accessor closures.
type Field[R any] interface {
	encodeTo(s *serializer.Serializer, rec R) error
	decodeInto(d *deserializer.Deserializer, rec *R) error
	sizeOn(z *sizer.Sizer) error
}

type field[R, T any] struct {
	codec *Codec[T]
	get   func(R) T
	set   func(*R, T)
}

func (f field[R, T]) encodeTo(s *serializer.Serializer, rec R) error {
	return f.codec.EncodeTo(s, f.get(rec))
}

func (f field[R, T]) decodeInto(d *deserializer.Deserializer, rec *R) error {
	v, err := f.codec.DecodeFrom(d)
	if err != nil {
		return err
	}
	f.set(rec, v)
	return nil
}

func (f field[R, T]) sizeOn(z *sizer.Sizer) error {
	return f.codec.SizeOn(z)
}

// NewField describes one record field: the Codec that serializes its
// value, a getter that reads it out of R for encoding, and a setter
// that writes a decoded value back into R.
func NewField[R, T any](codec *Codec[T], get func(R) T, set func(*R, T)) Field[R] {
	return field[R, T]{codec: codec, get: get, set: set}
}

// MaskField describes the OptionalFieldSet token itself as a record
// field: a placeholder with no backing storage in R, present purely to
// give the mask a fixed position in the field list.
func MaskField[R any]() Field[R] {
	return NewField[R, struct{}](
		OptionalFieldSet,
		func(R) struct{} { return struct{}{} },
		func(*R, struct{}) {},
	)
}

// Record builds a Codec for a record type R out of its ordered field
// list: encode visits fields in order, writing each one's payload;
// decode visits them in the same order, filling R in place; size sums
// each field's contribution.
func Record[R any](fields ...Field[R]) *Codec[R] {
	return &Codec[R]{
		EncodeTo: func(s *serializer.Serializer, rec R) error {
			for _, f := range fields {
				if err := f.encodeTo(s, rec); err != nil {
					return err
				}
			}
			return nil
		},
		DecodeFrom: func(d *deserializer.Deserializer) (R, error) {
			var rec R
			for _, f := range fields {
				if err := f.decodeInto(d, &rec); err != nil {
					var zero R
					return zero, err
				}
			}
			return rec, nil
		},
		SizeOn: func(z *sizer.Sizer) error {
			for _, f := range fields {
				if err := f.sizeOn(z); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
