package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTooLongIs(t *testing.T) {
	err := Extend(NewTooLong("string too long"), "encode field")
	require.True(t, errors.Is(err, TooLong{}))
	require.False(t, errors.Is(err, MaskMissing{}))
}

func TestBufferFullMessage(t *testing.T) {
	err := NewBufferFull(4, 2)
	require.EqualError(t, err, "buffer full: need 4 bytes, 2 remaining")
	require.True(t, errors.Is(err, BufferFull{}))
}

func TestTruncatedMessage(t *testing.T) {
	err := NewTruncated(8, 3)
	require.EqualError(t, err, "truncated: need 8 bytes, 3 remaining")
	require.True(t, errors.Is(err, Truncated{}))
}

func TestConstMismatchMessage(t *testing.T) {
	err := NewConstMismatch(uint16(0xF001), uint16(0x00F0))
	require.EqualError(t, err, "const mismatch: want 61441, got 240")
	require.True(t, errors.Is(err, ConstMismatch{}))
}

func TestMaskMissingExtend(t *testing.T) {
	err := NewMaskMissing("optional field bit 2")
	extended := Extend(err, "record Order")
	require.EqualError(t, extended, "record Order: optional field bit 2")
	require.True(t, errors.Is(extended, MaskMissing{}))
}

func TestExtendWrapsPlainErrors(t *testing.T) {
	require.EqualError(t, Extend(errors.New("a"), "b"), "b: a")
}
