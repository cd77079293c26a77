package wire_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wavesplatform/gowire/pkg/errs"
	"github.com/wavesplatform/gowire/pkg/wire"
)

func TestScenario_I32ThenU16(t *testing.T) {
	buf := make([]byte, 10)
	rem, err := wire.Encode(buf, wire.Int32, 5)
	require.NoError(t, err)
	rem, err = wire.Encode(rem, wire.UInt16, 15)
	require.NoError(t, err)
	require.Len(t, rem, 4)

	written := buf[:len(buf)-len(rem)]
	require.Equal(t, []byte{0, 0, 0, 5, 0, 0x0F}, written)

	i, tail, err := wire.Decode(written, wire.Int32)
	require.NoError(t, err)
	require.Equal(t, int32(5), i)

	u, tail, err := wire.Decode(tail, wire.UInt16)
	require.NoError(t, err)
	require.Equal(t, uint16(15), u)
	require.Empty(t, tail)
}

func TestScenario_StringABC(t *testing.T) {
	buf := make([]byte, 5)
	rem, err := wire.Encode(buf, wire.String, "ABC")
	require.NoError(t, err)
	written := buf[:len(buf)-len(rem)]
	require.Equal(t, []byte{0, 3, 0x41, 0x42, 0x43}, written)

	s, tail, err := wire.Decode(written, wire.String)
	require.NoError(t, err)
	require.Equal(t, "ABC", s)
	require.Empty(t, tail)
}

func TestScenario_ConstMismatch(t *testing.T) {
	codec := wire.ConstUint16(0xF001)
	_, _, err := wire.Decode([]byte{0x00, 0xF0}, codec)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ConstMismatch{}))
}

type optMaskRecord struct {
	optInt    wire.Option[int32]
	optString wire.Option[string]
}

func TestScenario_OptionalFieldSetMaskLayout(t *testing.T) {
	codec := wire.Record[optMaskRecord](
		wire.MaskField[optMaskRecord](),
		wire.NewField(wire.OptionalField[int32](0, wire.Int32),
			func(r optMaskRecord) wire.Option[int32] { return r.optInt },
			func(r *optMaskRecord, v wire.Option[int32]) { r.optInt = v }),
		wire.NewField(wire.OptionalField[string](2, wire.String),
			func(r optMaskRecord) wire.Option[string] { return r.optString },
			func(r *optMaskRecord, v wire.Option[string]) { r.optString = v }),
	)

	rec := optMaskRecord{optInt: wire.Some(int32(5)), optString: wire.Some("AB")}

	buf := make([]byte, 16)
	rem, err := wire.Encode(buf, codec, rec)
	require.NoError(t, err)
	written := buf[:len(buf)-len(rem)]
	require.Equal(t, []byte{0, 5, 0, 0, 0, 5, 0, 2, 0x41, 0x42}, written)

	got, tail, err := wire.Decode(written, codec)
	require.NoError(t, err)
	require.Empty(t, tail)
	require.Equal(t, rec, got)
}

func TestScenario_TimePoint(t *testing.T) {
	tp := time.UnixMicro(1462079700123456).UTC()
	buf := make([]byte, 8)
	rem, err := wire.Encode(buf, wire.TimePoint, tp)
	require.NoError(t, err)
	written := buf[:len(buf)-len(rem)]
	require.Equal(t, []byte{0x00, 0x05, 0x31, 0xC0, 0xF5, 0x28, 0xBF, 0x40}, written)

	got, tail, err := wire.Decode(written, wire.TimePoint)
	require.NoError(t, err)
	require.Empty(t, tail)
	require.True(t, got.Equal(tp))
}

func TestScenario_EmptyNestedSequence(t *testing.T) {
	codec := wire.Sequence(wire.Sequence(wire.String))
	buf := make([]byte, 2)
	rem, err := wire.Encode(buf, codec, nil)
	require.NoError(t, err)
	require.Empty(t, rem)
	require.Equal(t, []byte{0, 0}, buf)

	n, err := wire.Measure(buf, codec)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	got, tail, err := wire.Decode(buf, codec)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Empty(t, tail)
}
