package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wavesplatform/gowire/pkg/wire"
)

type point struct {
	X int32
	Y int32
}

func pointCodec() *wire.Codec[point] {
	return wire.Record[point](
		wire.NewField(wire.Int32, func(p point) int32 { return p.X }, func(p *point, v int32) { p.X = v }),
		wire.NewField(wire.Int32, func(p point) int32 { return p.Y }, func(p *point, v int32) { p.Y = v }),
	)
}

func TestRecord_RoundTrip(t *testing.T) {
	codec := pointCodec()
	p := point{X: 5, Y: 15}

	buf := make([]byte, 16)
	rem, err := wire.Encode(buf, codec, p)
	require.NoError(t, err)

	written := buf[:len(buf)-len(rem)]
	require.Equal(t, []byte{0, 0, 0, 5, 0, 0, 0, 15}, written)

	got, tail, err := wire.Decode(written, codec)
	require.NoError(t, err)
	require.Empty(t, tail)
	require.Equal(t, p, got)

	n, err := wire.Measure(written, codec)
	require.NoError(t, err)
	require.Equal(t, len(written), n)
}

type nestedRecord struct {
	Name   string
	Points []point
}

func TestRecord_NestedSequence(t *testing.T) {
	inner := pointCodec()
	codec := wire.Record[nestedRecord](
		wire.NewField(wire.String, func(r nestedRecord) string { return r.Name }, func(r *nestedRecord, v string) { r.Name = v }),
		wire.NewField(wire.Sequence(inner), func(r nestedRecord) []point { return r.Points }, func(r *nestedRecord, v []point) { r.Points = v }),
	)

	rec := nestedRecord{Name: "path", Points: []point{{X: 1, Y: 2}, {X: 3, Y: 4}}}

	buf := make([]byte, 64)
	rem, err := wire.Encode(buf, codec, rec)
	require.NoError(t, err)
	written := buf[:len(buf)-len(rem)]

	got, tail, err := wire.Decode(written, codec)
	require.NoError(t, err)
	require.Empty(t, tail)
	require.Equal(t, rec, got)
}
