package wire_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavesplatform/gowire/pkg/errs"
	"github.com/wavesplatform/gowire/pkg/wire"
)

type withOptionals struct {
	tag uint16
	a   wire.Option[uint32]
	b   wire.Option[string]
}

func recordWithOptionals() *wire.Codec[withOptionals] {
	return wire.Record[withOptionals](
		wire.NewField(wire.UInt16,
			func(r withOptionals) uint16 { return r.tag },
			func(r *withOptionals, v uint16) { r.tag = v }),
		wire.MaskField[withOptionals](),
		wire.NewField(wire.OptionalField(0, wire.UInt32),
			func(r withOptionals) wire.Option[uint32] { return r.a },
			func(r *withOptionals, v wire.Option[uint32]) { r.a = v }),
		wire.NewField(wire.OptionalField(1, wire.String),
			func(r withOptionals) wire.Option[string] { return r.b },
			func(r *withOptionals, v wire.Option[string]) { r.b = v }),
	)
}

func TestOptionalField_BothPresent(t *testing.T) {
	codec := recordWithOptionals()
	rec := withOptionals{tag: 5, a: wire.Some(uint32(5)), b: wire.Some("AB")}

	buf := make([]byte, 64)
	rem, err := wire.Encode(buf, codec, rec)
	require.NoError(t, err)

	written := buf[:len(buf)-len(rem)]
	require.Equal(t, []byte{0, 5, 0, 3, 0, 0, 0, 5, 0, 2, 65, 66}, written)

	got, tail, err := wire.Decode(written, codec)
	require.NoError(t, err)
	require.Empty(t, tail)
	require.Equal(t, rec, got)

	n, err := wire.Measure(written, codec)
	require.NoError(t, err)
	require.Equal(t, len(written), n)
}

func TestOptionalField_BothAbsent(t *testing.T) {
	codec := recordWithOptionals()
	rec := withOptionals{tag: 7}

	buf := make([]byte, 16)
	rem, err := wire.Encode(buf, codec, rec)
	require.NoError(t, err)

	written := buf[:len(buf)-len(rem)]
	require.Equal(t, []byte{0, 7, 0, 0}, written)

	got, _, err := wire.Decode(written, codec)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestOptionalField_WithoutMaskFails(t *testing.T) {
	field := wire.OptionalField(0, wire.UInt32)

	buf := make([]byte, 16)
	_, err := wire.Encode(buf, field, wire.Some(uint32(1)))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.MaskMissing{}))
}
