package memory

import "sync"

// Pool is a typed object pool over sync.Pool. Get may return a
// previously used object; callers are expected to reinitialize it
// fully before use.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

// Put zeroes the object and returns it to the pool.
func (p *Pool[T]) Put(v *T) {
	var zero T
	*v = zero
	p.p.Put(v)
}
