// Package deserializer implements the read side of the wire format: a
// cursor over an input buffer plus the optional-field mask protocol.
package deserializer

import (
	"github.com/wavesplatform/gowire/pkg/errs"
	"github.com/wavesplatform/gowire/pkg/wire/byteorder"
	"github.com/wavesplatform/gowire/pkg/wire/mask"
)

// Deserializer is a read cursor over an input buffer.
type Deserializer struct {
	b []byte

	mask       mask.Mask
	maskLoaded bool
}

// NewDeserializer wraps b for reading from its origin.
func NewDeserializer(b []byte) *Deserializer {
	return &Deserializer{
		b: b,
	}
}

func (a *Deserializer) need(n int) error {
	if len(a.b) < n {
		return errs.NewTruncated(n, len(a.b))
	}
	return nil
}

// Byte reads one byte.
func (a *Deserializer) Byte() (byte, error) {
	if err := a.need(1); err != nil {
		return 0, err
	}
	out := a.b[0]
	a.b = a.b[1:]
	return out, nil
}

// Bool reads one byte; any nonzero value decodes to true.
func (a *Deserializer) Bool() (bool, error) {
	b, err := a.Byte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// Uint8 reads one unsigned byte.
func (a *Deserializer) Uint8() (uint8, error) {
	return a.Byte()
}

// Uint16 reads a big-endian u16.
func (a *Deserializer) Uint16() (uint16, error) {
	if err := a.need(2); err != nil {
		return 0, err
	}
	out := byteorder.Uint16(a.b[:2])
	a.b = a.b[2:]
	return out, nil
}

// Uint32 reads a big-endian u32.
func (a *Deserializer) Uint32() (uint32, error) {
	if err := a.need(4); err != nil {
		return 0, err
	}
	out := byteorder.Uint32(a.b[:4])
	a.b = a.b[4:]
	return out, nil
}

// Uint64 reads a big-endian u64.
func (a *Deserializer) Uint64() (uint64, error) {
	if err := a.need(8); err != nil {
		return 0, err
	}
	out := byteorder.Uint64(a.b[:8])
	a.b = a.b[8:]
	return out, nil
}

// Int8 reads a single two's-complement byte.
func (a *Deserializer) Int8() (int8, error) {
	b, err := a.Byte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

// Int16 reads a big-endian, two's-complement i16.
func (a *Deserializer) Int16() (int16, error) {
	u, err := a.Uint16()
	if err != nil {
		return 0, err
	}
	return int16(u), nil
}

// Int32 reads a big-endian, two's-complement i32.
func (a *Deserializer) Int32() (int32, error) {
	u, err := a.Uint32()
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// Int64 reads a big-endian, two's-complement i64.
func (a *Deserializer) Int64() (int64, error) {
	u, err := a.Uint64()
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

// Float32 reads an IEEE-754 single transported as a big-endian u32.
func (a *Deserializer) Float32() (float32, error) {
	u, err := a.Uint32()
	if err != nil {
		return 0, err
	}
	return byteorder.UnpackFloat32(u), nil
}

// Float64 reads an IEEE-754 double transported as a big-endian u64.
func (a *Deserializer) Float64() (float64, error) {
	u, err := a.Uint64()
	if err != nil {
		return 0, err
	}
	return byteorder.UnpackFloat64(u), nil
}

// Len reports the number of unconsumed bytes.
func (a *Deserializer) Len() int {
	return len(a.b)
}

// Rest returns whatever remains unconsumed.
func (a *Deserializer) Rest() []byte {
	return a.b
}

// Bytes consumes and returns exactly length bytes.
func (a *Deserializer) Bytes(length uint) ([]byte, error) {
	if err := a.need(int(length)); err != nil {
		return nil, err
	}
	out := a.b[:length]
	a.b = a.b[length:]
	return out, nil
}

// ByteStringWithUint16Len reads a u16 length prefix followed by that
// many raw bytes.
func (a *Deserializer) ByteStringWithUint16Len() ([]byte, error) {
	l, err := a.Uint16()
	if err != nil {
		return nil, err
	}
	return a.Bytes(uint(l))
}

// StringWithUint16Len reads a u16 length prefix followed by that many
// raw bytes, returned as a freshly-copied string.
func (a *Deserializer) StringWithUint16Len() (string, error) {
	b, err := a.ByteStringWithUint16Len()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Count reads a u16 element/entry count for Sequence and Map prefixes.
func (a *Deserializer) Count() (int, error) {
	c, err := a.Uint16()
	if err != nil {
		return 0, err
	}
	return int(c), nil
}

// BeginOptionalFieldSet reads the u16 mask and makes it the governing
// mask for subsequent OptionalField reads, replacing any prior mask.
func (a *Deserializer) BeginOptionalFieldSet() error {
	m, err := a.Uint16()
	if err != nil {
		return err
	}
	a.mask = mask.Load(m)
	a.maskLoaded = true
	return nil
}

// OptionalActive reports whether an OptionalFieldSet currently governs
// the traversal.
func (a *Deserializer) OptionalActive() bool {
	return a.maskLoaded
}

// TestOptionalBit reports whether bit is set in the active mask. Fails
// with errs.MaskMissing if no OptionalFieldSet is active.
func (a *Deserializer) TestOptionalBit(bit int) (bool, error) {
	if !a.maskLoaded {
		return false, errs.NewMaskMissing("no active OptionalFieldSet")
	}
	return a.mask.Test(bit), nil
}
