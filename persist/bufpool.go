package persist

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool/v2"
)

// Scratch buffers for assembling file images are recycled through an object
// pool rather than allocated per call.

type bufferFactory struct{}

func (f *bufferFactory) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	return pool.NewPooledObject(new(bytes.Buffer)), nil
}

func (f *bufferFactory) DestroyObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

func (f *bufferFactory) ValidateObject(_ context.Context, _ *pool.PooledObject) bool {
	return true
}

func (f *bufferFactory) ActivateObject(_ context.Context, obj *pool.PooledObject) error {
	if buf, ok := obj.Object.(*bytes.Buffer); ok {
		buf.Reset()
	}
	return nil
}

func (f *bufferFactory) PassivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

var bufPool = pool.NewObjectPoolWithDefaultConfig(context.Background(), &bufferFactory{})

func borrowBuffer(ctx context.Context) (*bytes.Buffer, error) {
	obj, err := bufPool.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	return obj.(*bytes.Buffer), nil
}

func returnBuffer(ctx context.Context, buf *bytes.Buffer) {
	_ = bufPool.ReturnObject(ctx, buf)
}
