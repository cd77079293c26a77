package bufpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavesplatform/gowire/pkg/wire"
)

const size = 4096

func TestNew(t *testing.T) {
	pool := New(32, size)
	assert.NotNil(t, pool)
}

func TestNew_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "poolSize should be positive", func() {
		New(-1, size)
	})
	assert.PanicsWithValue(t, "bytesLen should be positive", func() {
		New(1, 0)
	})
}

func TestPool_Get(t *testing.T) {
	pool := New(32, size)

	bts := pool.Get()

	assert.Equal(t, size, len(bts))
}

func TestPool_Put(t *testing.T) {
	pool := New(1, size)
	bts1 := make([]byte, size)
	pool.Put(bts1)
	bts2 := make([]byte, size)
	pool.Put(bts2)

	pool.Get()
}

func TestPool_GetPut(t *testing.T) {
	pool := New(32, size)
	bts1 := make([]byte, size)
	pool.Put(bts1)
	assert.EqualValues(t, 0, pool.Allocations())

	bts2 := make([]byte, size/2)
	pool.Put(bts2)
	assert.EqualValues(t, 0, pool.Allocations())

	pool.Get()
	assert.EqualValues(t, 0, pool.Allocations())

	pool.Get()
	assert.EqualValues(t, 1, pool.Allocations())
}

func TestPool_Stat(t *testing.T) {
	pool := New(32, size)

	allocations, puts, gets := pool.Stat()
	assert.EqualValues(t, 0, allocations)
	assert.EqualValues(t, 0, puts)
	assert.EqualValues(t, 0, gets)

	pool.Put(pool.Get())
	allocations, puts, gets = pool.Stat()
	assert.EqualValues(t, 1, allocations)
	assert.EqualValues(t, 1, puts)
	assert.EqualValues(t, 1, gets)

	pool.Put(pool.Get())
	allocations, puts, gets = pool.Stat()
	assert.EqualValues(t, 1, allocations)
	assert.EqualValues(t, 2, puts)
	assert.EqualValues(t, 2, gets)
}

func TestEncode_ReturnsBufferOnRelease(t *testing.T) {
	pool := New(1, size)

	written, release, err := Encode(pool, wire.String, "hello")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 5, 'h', 'e', 'l', 'l', 'o'}, written)
	assert.EqualValues(t, 1, pool.Allocations())

	release()
	_, puts, _ := pool.Stat()
	assert.EqualValues(t, 1, puts)
}

func TestEncode_FailureStillReleasesBuffer(t *testing.T) {
	pool := New(1, 4)

	_, release, err := Encode(pool, wire.String, "too long for a 4-byte buffer")
	require.Error(t, err)
	release()

	_, puts, _ := pool.Stat()
	assert.EqualValues(t, 1, puts)
}
