// Package byteorder holds the format's byte-order primitives: network
// (big-endian) integer marshalling and the IEEE-754 bit-pattern
// packing that floats ride over. Go's encoding/binary already speaks
// network byte order regardless of host endianness, so the PutUintN/UintN
// helpers reduce to that; PackFloat32/64 and UnpackFloat32/64 give floats a
// same-width unsigned integer to travel as.
package byteorder

import (
	"encoding/binary"
	"math"
)

// PutUint16 writes v to b in network byte order.
func PutUint16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

// Uint16 reads a network-byte-order u16 from b.
func Uint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// PutUint32 writes v to b in network byte order.
func PutUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// Uint32 reads a network-byte-order u32 from b.
func Uint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// PutUint64 writes v to b in network byte order.
func PutUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// Uint64 reads a network-byte-order u64 from b.
func Uint64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// PackFloat32 reinterprets f's IEEE-754 bit pattern as a u32 for
// network transport.
func PackFloat32(f float32) uint32 { return math.Float32bits(f) }

// UnpackFloat32 reinterprets a u32 transported over the wire as its
// IEEE-754 bit pattern.
func UnpackFloat32(u uint32) float32 { return math.Float32frombits(u) }

// PackFloat64 reinterprets f's IEEE-754 bit pattern as a u64 for
// network transport.
func PackFloat64(f float64) uint64 { return math.Float64bits(f) }

// UnpackFloat64 reinterprets a u64 transported over the wire as its
// IEEE-754 bit pattern.
func UnpackFloat64(u uint64) float64 { return math.Float64frombits(u) }
