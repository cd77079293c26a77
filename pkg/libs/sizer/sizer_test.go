package sizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavesplatform/gowire/pkg/errs"
)

func TestSizer_Fixed(t *testing.T) {
	s := New([]byte{1, 2, 3, 4})
	require.NoError(t, s.Fixed(4))
	require.Equal(t, 4, s.N())
}

func TestSizer_FixedTruncated(t *testing.T) {
	s := New([]byte{1, 2})
	err := s.Fixed(4)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.Truncated{}))
}

func TestSizer_String(t *testing.T) {
	s := New([]byte{0, 3, 'a', 'b', 'c', 0xFF})
	require.NoError(t, s.String())
	require.Equal(t, 5, s.N())
}

func TestSizer_EmptySequenceOfSequenceOfString(t *testing.T) {
	// Sequence<Sequence<String>> with zero elements: wire is just "00 00".
	s := New([]byte{0, 0})
	c, err := s.Count()
	require.NoError(t, err)
	require.Zero(t, c)
	require.Equal(t, 2, s.N())
}

func TestSizer_OptionalFieldSet(t *testing.T) {
	s := New([]byte{0, 5, 0, 0, 0, 5})
	require.NoError(t, s.BeginOptionalFieldSet())
	require.Equal(t, 2, s.N())
	bit0, err := s.TestOptionalBit(0)
	require.NoError(t, err)
	require.True(t, bit0)
	require.NoError(t, s.Fixed(4)) // opt_int32@0
	require.Equal(t, 6, s.N())
}

func TestSizer_OptionalBitWithoutMask(t *testing.T) {
	s := New([]byte{})
	_, err := s.TestOptionalBit(0)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.MaskMissing{}))
}
