// Package sizer implements the measurement side of the wire format: a
// peeking cursor that computes the exact on-wire length of a value
// already present in a buffer, without materializing it.
package sizer

import (
	"github.com/wavesplatform/gowire/pkg/errs"
	"github.com/wavesplatform/gowire/pkg/wire/byteorder"
	"github.com/wavesplatform/gowire/pkg/wire/mask"
)

// Sizer is a read-only peeking cursor over an input buffer. It never
// copies payload bytes; it only advances past them and accumulates
// their length.
type Sizer struct {
	b []byte
	n int

	mask       mask.Mask
	maskLoaded bool
}

// New wraps b for measuring from its origin.
func New(b []byte) *Sizer {
	return &Sizer{b: b}
}

// N reports the number of bytes accounted for so far.
func (a *Sizer) N() int {
	return a.n
}

func (a *Sizer) need(n int) error {
	if len(a.b) < n {
		return errs.NewTruncated(n, len(a.b))
	}
	return nil
}

func (a *Sizer) skip(n int) {
	a.b = a.b[n:]
	a.n += n
}

// Fixed accounts for a fixed-width scalar (bool, u8/16/32/64,
// float32/64, TimePoint) without inspecting its bytes.
func (a *Sizer) Fixed(width int) error {
	if err := a.need(width); err != nil {
		return err
	}
	a.skip(width)
	return nil
}

// String peeks the u16 length prefix, accounts for it plus the string
// bytes, and advances past both.
func (a *Sizer) String() error {
	if err := a.need(2); err != nil {
		return err
	}
	l := int(byteorder.Uint16(a.b[:2]))
	if err := a.need(2 + l); err != nil {
		return err
	}
	a.skip(2 + l)
	return nil
}

// Count peeks a u16 element/entry count and advances past it, mirroring
// the encoder/decoder's own Count/Uint16 step.
func (a *Sizer) Count() (int, error) {
	if err := a.need(2); err != nil {
		return 0, err
	}
	c := int(byteorder.Uint16(a.b[:2]))
	a.skip(2)
	return c, nil
}

// BeginOptionalFieldSet peeks the u16 mask, accounts for it, and makes
// it the governing mask for subsequent OptionalField measurements.
func (a *Sizer) BeginOptionalFieldSet() error {
	if err := a.need(2); err != nil {
		return err
	}
	a.mask = mask.Load(byteorder.Uint16(a.b[:2]))
	a.maskLoaded = true
	a.skip(2)
	return nil
}

// OptionalActive reports whether an OptionalFieldSet currently governs
// the traversal.
func (a *Sizer) OptionalActive() bool {
	return a.maskLoaded
}

// TestOptionalBit reports whether bit is set in the active mask. Fails
// with errs.MaskMissing if no OptionalFieldSet is active.
func (a *Sizer) TestOptionalBit(bit int) (bool, error) {
	if !a.maskLoaded {
		return false, errs.NewMaskMissing("no active OptionalFieldSet")
	}
	return a.mask.Test(bit), nil
}
