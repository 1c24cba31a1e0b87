package workerpool_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mbox/internal/workerpool"
)

func TestPoolRunsAllJobs(t *testing.T) {
	p := workerpool.New(4)
	defer p.Close()

	var n int64
	for i := 0; i < 200; i++ {
		p.Enqueue(func() { atomic.AddInt64(&n, 1) })
	}
	p.Wait()

	assert.Equal(t, int64(200), atomic.LoadInt64(&n))
}

func TestPoolWaitIsQuiescent(t *testing.T) {
	p := workerpool.New(2)
	defer p.Close()

	var running int64
	var maxRunning int64
	for i := 0; i < 20; i++ {
		p.Enqueue(func() {
			cur := atomic.AddInt64(&running, 1)
			for {
				old := atomic.LoadInt64(&maxRunning)
				if cur <= old || atomic.CompareAndSwapInt64(&maxRunning, old, cur) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt64(&running, -1)
		})
	}
	p.Wait()

	assert.Equal(t, int64(0), atomic.LoadInt64(&running))
	assert.LessOrEqual(t, atomic.LoadInt64(&maxRunning), int64(2))
}

func TestPoolCloseIsIdempotent(t *testing.T) {
	p := workerpool.New(1)
	p.Enqueue(func() {})
	p.Close()
	p.Close()
}

func TestPoolWakesAfterIdlePeriod(t *testing.T) {
	p := workerpool.New(2)
	defer p.Close()

	// Let the workers sit idle on the queue's condition variable before
	// enqueuing anything: if they busy-spun instead of blocking, this
	// sleep would just burn CPU, but functionally the job below must
	// still run promptly once enqueued.
	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	p.Enqueue(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job enqueued after idle period never ran")
	}
}
