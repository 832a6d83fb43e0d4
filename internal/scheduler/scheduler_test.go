package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	fired []int64
	ch    chan int64
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan int64, 8)}
}

func (r *recorder) expire(ctx context.Context, bookingID int64) {
	r.mu.Lock()
	r.fired = append(r.fired, bookingID)
	r.mu.Unlock()
	r.ch <- bookingID
}

func TestLocalTimerFires(t *testing.T) {
	rec := newRecorder()
	s := New(nil, time.Second, rec.expire)

	err := s.Schedule(context.Background(), 42, time.Now().Add(20*time.Millisecond))
	assert.NoError(t, err)

	select {
	case id := <-rec.ch:
		assert.Equal(t, int64(42), id)
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestCancelStopsLocalTimer(t *testing.T) {
	rec := newRecorder()
	s := New(nil, time.Second, rec.expire)

	_ = s.Schedule(context.Background(), 42, time.Now().Add(50*time.Millisecond))
	s.Cancel(context.Background(), 42)

	select {
	case <-rec.ch:
		t.Fatal("cancelled timer fired")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPastDeadlineFiresImmediately(t *testing.T) {
	rec := newRecorder()
	s := New(nil, time.Second, rec.expire)

	_ = s.Schedule(context.Background(), 7, time.Now().Add(-time.Minute))

	select {
	case id := <-rec.ch:
		assert.Equal(t, int64(7), id)
	case <-time.After(time.Second):
		t.Fatal("past deadline never fired")
	}
}

func TestRescheduleReplacesTimer(t *testing.T) {
	rec := newRecorder()
	s := New(nil, time.Second, rec.expire)

	_ = s.Schedule(context.Background(), 42, time.Now().Add(10*time.Minute))
	_ = s.Schedule(context.Background(), 42, time.Now().Add(20*time.Millisecond))

	select {
	case <-rec.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("rescheduled timer never fired")
	}

	// The earlier long timer must not fire a second time.
	select {
	case <-rec.ch:
		t.Fatal("replaced timer fired too")
	case <-time.After(100 * time.Millisecond):
	}
}
