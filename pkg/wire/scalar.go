package wire

import (
	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// Bool encodes as a single byte: 0x01 for true, 0x00 for false; any
// nonzero byte decodes to true.
var Bool = &Codec[bool]{
	EncodeTo:   func(s *serializer.Serializer, v bool) error { return s.Bool(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (bool, error) { return d.Bool() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(1) },
}

// UInt8 encodes as a single byte.
var UInt8 = &Codec[uint8]{
	EncodeTo:   func(s *serializer.Serializer, v uint8) error { return s.Uint8(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (uint8, error) { return d.Uint8() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(1) },
}

// UInt16 encodes as a big-endian u16.
var UInt16 = &Codec[uint16]{
	EncodeTo:   func(s *serializer.Serializer, v uint16) error { return s.Uint16(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (uint16, error) { return d.Uint16() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(2) },
}

// UInt32 encodes as a big-endian u32.
var UInt32 = &Codec[uint32]{
	EncodeTo:   func(s *serializer.Serializer, v uint32) error { return s.Uint32(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (uint32, error) { return d.Uint32() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(4) },
}

// UInt64 encodes as a big-endian u64.
var UInt64 = &Codec[uint64]{
	EncodeTo:   func(s *serializer.Serializer, v uint64) error { return s.Uint64(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (uint64, error) { return d.Uint64() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(8) },
}

// Int8 encodes as a single two's-complement byte.
var Int8 = &Codec[int8]{
	EncodeTo:   func(s *serializer.Serializer, v int8) error { return s.Int8(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (int8, error) { return d.Int8() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(1) },
}

// Int16 encodes as a big-endian, two's-complement i16.
var Int16 = &Codec[int16]{
	EncodeTo:   func(s *serializer.Serializer, v int16) error { return s.Int16(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (int16, error) { return d.Int16() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(2) },
}

// Int32 encodes as a big-endian, two's-complement i32.
var Int32 = &Codec[int32]{
	EncodeTo:   func(s *serializer.Serializer, v int32) error { return s.Int32(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (int32, error) { return d.Int32() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(4) },
}

// Int64 encodes as a big-endian, two's-complement i64.
var Int64 = &Codec[int64]{
	EncodeTo:   func(s *serializer.Serializer, v int64) error { return s.Int64(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (int64, error) { return d.Int64() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(8) },
}

// Float32 transports an IEEE-754 single as a big-endian u32.
var Float32 = &Codec[float32]{
	EncodeTo:   func(s *serializer.Serializer, v float32) error { return s.Float32(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (float32, error) { return d.Float32() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(4) },
}

// Float64 transports an IEEE-754 double as a big-endian u64.
var Float64 = &Codec[float64]{
	EncodeTo:   func(s *serializer.Serializer, v float64) error { return s.Float64(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (float64, error) { return d.Float64() },
	SizeOn:     func(z *sizer.Sizer) error { return z.Fixed(8) },
}

// String encodes as a u16 length prefix followed by that many raw,
// binary-safe bytes.
var String = &Codec[string]{
	EncodeTo:   func(s *serializer.Serializer, v string) error { return s.StringWithUint16Len(v) },
	DecodeFrom: func(d *deserializer.Deserializer) (string, error) { return d.StringWithUint16Len() },
	SizeOn:     func(z *sizer.Sizer) error { return z.String() },
}
