package wire

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// Map builds a Codec for a Map<K,V>: a u16 entry-count prefix followed
// by that many (K, V) pairs. The decoded representation is an
// orderedmap.OrderedMap rather than a plain Go map: the wire format
// leaves Map's iteration order on encode unspecified for an unordered
// container, so a caller that needs reproducible output round-trips
// through the ordered map instead of carrying a side list of keys.
func Map[K comparable, V any](key *Codec[K], val *Codec[V]) *Codec[*orderedmap.OrderedMap[K, V]] {
	return &Codec[*orderedmap.OrderedMap[K, V]]{
		EncodeTo: func(s *serializer.Serializer, m *orderedmap.OrderedMap[K, V]) error {
			if err := s.Count(m.Len()); err != nil {
				return err
			}
			for el := m.Front(); el != nil; el = el.Next() {
				if err := key.EncodeTo(s, el.Key); err != nil {
					return err
				}
				if err := val.EncodeTo(s, el.Value); err != nil {
					return err
				}
			}
			return nil
		},
		DecodeFrom: func(d *deserializer.Deserializer) (*orderedmap.OrderedMap[K, V], error) {
			c, err := d.Count()
			if err != nil {
				return nil, err
			}
			m := orderedmap.NewOrderedMap[K, V]()
			for i := 0; i < c; i++ {
				k, err := key.DecodeFrom(d)
				if err != nil {
					return nil, err
				}
				v, err := val.DecodeFrom(d)
				if err != nil {
					return nil, err
				}
				// Last-write-wins on duplicate keys: Set overwrites the
				// value of an existing key without disturbing its
				// position, matching the wire format's stated semantics.
				m.Set(k, v)
			}
			return m, nil
		},
		SizeOn: func(z *sizer.Sizer) error {
			c, err := z.Count()
			if err != nil {
				return err
			}
			for i := 0; i < c; i++ {
				if err := key.SizeOn(z); err != nil {
					return err
				}
				if err := val.SizeOn(z); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
