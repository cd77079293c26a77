package wire

import (
	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// Sequence builds a Codec for a Sequence<T>: a u16 count prefix
// followed by that many encodings of elem's T, in order.
func Sequence[T any](elem *Codec[T]) *Codec[[]T] {
	return &Codec[[]T]{
		EncodeTo: func(s *serializer.Serializer, v []T) error {
			if err := s.Count(len(v)); err != nil {
				return err
			}
			for _, e := range v {
				if err := elem.EncodeTo(s, e); err != nil {
					return err
				}
			}
			return nil
		},
		DecodeFrom: func(d *deserializer.Deserializer) ([]T, error) {
			c, err := d.Count()
			if err != nil {
				return nil, err
			}
			out := make([]T, 0, c)
			for i := 0; i < c; i++ {
				v, err := elem.DecodeFrom(d)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		},
		SizeOn: func(z *sizer.Sizer) error {
			c, err := z.Count()
			if err != nil {
				return err
			}
			for i := 0; i < c; i++ {
				if err := elem.SizeOn(z); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
