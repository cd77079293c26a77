package wire

import (
	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// Lazy defers decoding a value of type T until Get is first called. A
// Lazy constructed by OfValue already holds its T; one constructed by
// FromBuffer holds only the buffer slice covering that value's wire
// encoding plus its precomputed length, and materializes on demand.
type Lazy[T any] struct {
	codec *Codec[T]

	hasValue bool
	value    T

	buf []byte
}

// OfValue builds an already-materialized Lazy around v.
func OfValue[T any](codec *Codec[T], v T) Lazy[T] {
	return Lazy[T]{codec: codec, hasValue: true, value: v}
}

// FromBuffer builds a Lazy over buf without decoding anything yet. It
// uses codec's SizeOn to find exactly how many leading bytes of buf
// belong to this value, so the Lazy can report BufferSize and be
// skipped over by a caller that never calls Get.
func FromBuffer[T any](codec *Codec[T], buf []byte) (Lazy[T], error) {
	n, err := Measure(buf, codec)
	if err != nil {
		return Lazy[T]{}, err
	}
	return Lazy[T]{codec: codec, buf: buf[:n]}, nil
}

// HasValue reports whether the wrapped value has already been
// materialized, without triggering a decode.
func (l Lazy[T]) HasValue() bool {
	return l.hasValue
}

// BufferSize reports the number of wire bytes this Lazy covers. It is
// zero for a Lazy built with OfValue that has never been measured.
func (l Lazy[T]) BufferSize() int {
	return len(l.buf)
}

// Get returns the wrapped value, decoding it from its buffer the first
// time it is called and caching the result for subsequent calls.
func (l *Lazy[T]) Get() (T, error) {
	if l.hasValue {
		return l.value, nil
	}
	v, _, err := Decode(l.buf, l.codec)
	if err != nil {
		var zero T
		return zero, err
	}
	l.value = v
	l.hasValue = true
	return l.value, nil
}

// LazyCodec adapts inner into a Codec over Lazy[T]: encoding a Lazy
// that still only holds a buffer copies that buffer verbatim rather
// than materializing and re-encoding it; encoding one built with
// OfValue encodes the value normally. Decoding always produces a
// buffer-backed, unmaterialized Lazy. Size delegates straight to inner,
// since a Lazy's wire shape never differs from T's.
func LazyCodec[T any](inner *Codec[T]) *Codec[Lazy[T]] {
	return &Codec[Lazy[T]]{
		EncodeTo: func(s *serializer.Serializer, v Lazy[T]) error {
			if v.hasValue {
				return inner.EncodeTo(s, v.value)
			}
			return s.Bytes(v.buf)
		},
		DecodeFrom: func(d *deserializer.Deserializer) (Lazy[T], error) {
			n, err := Measure(d.Rest(), inner)
			if err != nil {
				return Lazy[T]{}, err
			}
			buf, err := d.Bytes(uint(n))
			if err != nil {
				return Lazy[T]{}, err
			}
			return Lazy[T]{codec: inner, buf: buf}, nil
		},
		SizeOn: func(z *sizer.Sizer) error {
			return inner.SizeOn(z)
		},
	}
}
