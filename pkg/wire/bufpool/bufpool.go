// Package bufpool pools the fixed-capacity output buffers wire.Encode
// needs, so a caller doing many encodes (a batch export, a hot request
// path) doesn't allocate one per call.
package bufpool

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wavesplatform/gowire/pkg/wire"
)

// Pool hands out byte slices of a fixed length and takes them back.
type Pool struct {
	index       int
	poolSize    int
	bytesLen    int
	arr         [][]byte
	mu          sync.Mutex
	allocations uint64
	putCalled   uint64
	getCalled   uint64
}

// New builds a Pool holding up to poolSize buffers of bytesLength each.
func New(poolSize int, bytesLength int) *Pool {
	if poolSize < 1 {
		panic("poolSize should be positive")
	}
	if bytesLength < 1 {
		panic("bytesLen should be positive")
	}

	return &Pool{
		index:    -1,
		poolSize: poolSize,
		bytesLen: bytesLength,
		arr:      make([][]byte, poolSize),
	}
}

// Get returns a buffer from the pool, allocating a new one if none are
// free. Its contents are whatever the previous holder left in it: a
// caller writing a Serializer over it will overwrite from the start
// anyway, so no zeroing is done here.
func (a *Pool) Get() []byte {
	a.mu.Lock()
	a.getCalled++
	if a.index == -1 {
		out := a.alloc(a.bytesLen)
		a.mu.Unlock()
		return out
	}
	bts := a.arr[a.index]
	a.arr[a.index] = nil
	a.index--
	a.mu.Unlock()
	return bts
}

// Put returns bts to the pool. A slice of the wrong length is dropped
// rather than stored, since the pool may only ever hand out one fixed
// length.
func (a *Pool) Put(bts []byte) {
	a.mu.Lock()
	a.putCalled++
	a.mu.Unlock()
	if len(bts) != a.bytesLen {
		zap.S().Warnf("bufpool: Put expected length %d, got %d", a.bytesLen, len(bts))
		return
	}

	a.mu.Lock()
	if a.index >= a.poolSize-1 {
		a.mu.Unlock()
		return
	}
	a.index++
	a.arr[a.index] = bts
	a.mu.Unlock()
}

func (a *Pool) alloc(size int) []byte {
	a.allocations++
	return make([]byte, size)
}

// Allocations reports how many buffers the pool has had to allocate
// beyond whatever was returned to it.
func (a *Pool) Allocations() uint64 {
	a.mu.Lock()
	out := a.allocations
	a.mu.Unlock()
	return out
}

// BytesLen reports the fixed length of buffers this pool hands out.
func (a *Pool) BytesLen() int {
	return a.bytesLen
}

// Stat reports the pool's lifetime allocation, Put, and Get counts.
func (a *Pool) Stat() (allocations, puts, gets uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocations, a.putCalled, a.getCalled
}

// Encode draws a buffer from p, encodes value with codec into it, and
// returns the written slice alongside a release func that returns the
// buffer to p. The caller must call release once it is done with the
// written slice, and must not retain the slice past that call.
func Encode[T any](p *Pool, codec *wire.Codec[T], value T) (written []byte, release func(), err error) {
	buf := p.Get()
	rem, err := wire.Encode(buf, codec, value)
	if err != nil {
		p.Put(buf)
		return nil, func() {}, err
	}
	return buf[:len(buf)-len(rem)], func() { p.Put(buf) }, nil
}
