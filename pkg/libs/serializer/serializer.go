// Package serializer implements the write side of the wire format: a
// cursor over a fixed-capacity output buffer plus the optional-field
// mask protocol.
package serializer

import (
	"fmt"
	"math"

	"github.com/ccoveille/go-safecast"

	"github.com/wavesplatform/gowire/pkg/errs"
	"github.com/wavesplatform/gowire/pkg/wire/byteorder"
	"github.com/wavesplatform/gowire/pkg/wire/mask"
)

// Serializer is a write cursor over a fixed-capacity output buffer. It
// addresses the buffer directly, rather than wrapping an io.Writer, so
// that an OptionalFieldSet mask can be rewritten in place once the
// optional fields it governs are known to be present or absent.
type Serializer struct {
	buf []byte
	pos int

	mask       mask.Mask
	maskPos    int
	maskActive bool
}

// New returns a Serializer that writes starting at buf's origin. buf's
// length is the hard limit on what can be encoded; writing past it
// fails with errs.BufferFull.
func New(buf []byte) *Serializer {
	return &Serializer{buf: buf}
}

// N reports the number of bytes written so far.
func (a *Serializer) N() int {
	return a.pos
}

// Remainder returns the unwritten tail of the output buffer.
func (a *Serializer) Remainder() []byte {
	return a.buf[a.pos:]
}

func (a *Serializer) reserve(n int) error {
	if a.pos+n > len(a.buf) {
		return errs.NewBufferFull(n, len(a.buf)-a.pos)
	}
	return nil
}

// Byte writes a single byte.
func (a *Serializer) Byte(b byte) error {
	if err := a.reserve(1); err != nil {
		return err
	}
	a.buf[a.pos] = b
	a.pos++
	return nil
}

// Bytes copies b verbatim into the buffer.
func (a *Serializer) Bytes(b []byte) error {
	if err := a.reserve(len(b)); err != nil {
		return err
	}
	copy(a.buf[a.pos:], b)
	a.pos += len(b)
	return nil
}

// Bool writes 0x01 for true and 0x00 for false.
func (a *Serializer) Bool(b bool) error {
	if b {
		return a.Byte(1)
	}
	return a.Byte(0)
}

// Uint8 writes a single unsigned byte.
func (a *Serializer) Uint8(v uint8) error {
	return a.Byte(v)
}

// Uint16 writes v big-endian.
func (a *Serializer) Uint16(v uint16) error {
	if err := a.reserve(2); err != nil {
		return err
	}
	byteorder.PutUint16(a.buf[a.pos:], v)
	a.pos += 2
	return nil
}

// Uint32 writes v big-endian.
func (a *Serializer) Uint32(v uint32) error {
	if err := a.reserve(4); err != nil {
		return err
	}
	byteorder.PutUint32(a.buf[a.pos:], v)
	a.pos += 4
	return nil
}

// Uint64 writes v big-endian.
func (a *Serializer) Uint64(v uint64) error {
	if err := a.reserve(8); err != nil {
		return err
	}
	byteorder.PutUint64(a.buf[a.pos:], v)
	a.pos += 8
	return nil
}

// Int8 writes v as a single byte.
func (a *Serializer) Int8(v int8) error {
	return a.Byte(uint8(v))
}

// Int16 writes v big-endian as its two's-complement bit pattern.
func (a *Serializer) Int16(v int16) error {
	return a.Uint16(uint16(v))
}

// Int32 writes v big-endian as its two's-complement bit pattern.
func (a *Serializer) Int32(v int32) error {
	return a.Uint32(uint32(v))
}

// Int64 writes v big-endian as its two's-complement bit pattern.
func (a *Serializer) Int64(v int64) error {
	return a.Uint64(uint64(v))
}

// Float32 transports v as its IEEE-754 bit pattern, big-endian.
func (a *Serializer) Float32(v float32) error {
	return a.Uint32(byteorder.PackFloat32(v))
}

// Float64 transports v as its IEEE-754 bit pattern, big-endian.
func (a *Serializer) Float64(v float64) error {
	return a.Uint64(byteorder.PackFloat64(v))
}

// StringWithUint16Len writes a u16 length prefix followed by s's raw
// bytes.
func (a *Serializer) StringWithUint16Len(s string) error {
	l, err := safecast.ToUint16(len(s))
	if err != nil {
		return errs.NewTooLong(fmt.Sprintf("string too long: %d bytes, max %d", len(s), math.MaxUint16))
	}
	if err := a.Uint16(l); err != nil {
		return err
	}
	return a.Bytes([]byte(s))
}

// Count writes n as a u16 element/entry count, for Sequence and Map
// prefixes.
func (a *Serializer) Count(n int) error {
	c, err := safecast.ToUint16(n)
	if err != nil {
		return errs.NewTooLong(fmt.Sprintf("too many elements: %d, max %d", n, math.MaxUint16))
	}
	return a.Uint16(c)
}

// BeginOptionalFieldSet reserves two zero bytes for the mask, records
// their position for a later in-place rewrite, and resets the internal
// mask value to zero. It replaces any previously governing mask.
func (a *Serializer) BeginOptionalFieldSet() error {
	if err := a.reserve(2); err != nil {
		return err
	}
	a.maskPos = a.pos
	a.mask.Reset()
	a.maskActive = true
	return a.Uint16(0)
}

// OptionalActive reports whether an OptionalFieldSet currently governs
// the traversal.
func (a *Serializer) OptionalActive() bool {
	return a.maskActive
}

// SetOptionalBit sets bit within the active mask and rewrites the mask
// word already written to the buffer. Fails with errs.MaskMissing if no
// OptionalFieldSet is active.
func (a *Serializer) SetOptionalBit(bit int) error {
	if !a.maskActive {
		return errs.NewMaskMissing(fmt.Sprintf("no active OptionalFieldSet for bit %d", bit))
	}
	a.mask.Set(bit)
	byteorder.PutUint16(a.buf[a.maskPos:], a.mask.ToUint16())
	return nil
}
