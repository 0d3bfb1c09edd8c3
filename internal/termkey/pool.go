package termkey

import "sync"

// bytePool hands out reusable fixed-size byte slices, eliminating
// per-poll allocations on the AdviseReadable hot path. Grounded on
// input/backend_unix.go's sync.Pool of 256-byte read buffers.
type bytePool struct {
	size int
	pool sync.Pool
}

func newBytePool(size int) *bytePool {
	return &bytePool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				b := make([]byte, size)
				return &b
			},
		},
	}
}

func (p *bytePool) get() []byte {
	b := p.pool.Get().(*[]byte)
	return (*b)[:p.size]
}

func (p *bytePool) put(b []byte) {
	p.pool.Put(&b)
}
