package source

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Matching a pattern against a plain string needs a short-lived Source.
// To avoid allocating the rune and offset buffers over and over again, we
// pool them.
type sourcePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalSourcePool *sourcePool

func init() {
	globalSourcePool = &sourcePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Source{}, nil
		})
	globalSourcePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalSourcePool.opool = pool.NewObjectPool(globalSourcePool.ctx, factory, config)
}

// Borrow returns a pooled Source, initialized for text.
// Clients should call Release when they are done with it.
//
// Strings returned by a borrowed Source (Peek, Read, Slice, ...) stay valid
// after the Source has been released.
func Borrow(text string) *Source {
	o, err := globalSourcePool.opool.BorrowObject(globalSourcePool.ctx)
	if err != nil {
		return New(text)
	}
	s := o.(*Source)
	s.Reset(text)
	return s
}

// Release clears a borrowed Source and puts it back into the pool.
// The Source must not be used after releasing it.
func (s *Source) Release() {
	s.text = ""
	s.data = nil
	s.pos = 0
	_ = globalSourcePool.opool.ReturnObject(globalSourcePool.ctx, s)
}
