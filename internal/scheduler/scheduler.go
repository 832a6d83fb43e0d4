// Package scheduler arms the payment-window deadline for approved bookings.
// With Redis configured, deadlines live in a sorted set and survive process
// restarts; without it, timers degrade to in-process time.AfterFunc and the
// startup sweep covers whatever a crash loses.
package scheduler

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const deadlineKey = "payment_deadlines"

// ExpireFunc is invoked when a booking's payment window elapses. It must be
// safe to call for bookings that already left the awaiting-payment state.
type ExpireFunc func(ctx context.Context, bookingID int64)

type Scheduler struct {
	rdb    *redis.Client
	expire ExpireFunc
	poll   time.Duration

	mu     sync.Mutex
	timers map[int64]*time.Timer

	stop chan struct{}
	done chan struct{}
}

func New(rdb *redis.Client, poll time.Duration, expire ExpireFunc) *Scheduler {
	if poll <= 0 {
		poll = 30 * time.Second
	}
	return &Scheduler{
		rdb:    rdb,
		expire: expire,
		poll:   poll,
		timers: make(map[int64]*time.Timer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Schedule arms the deadline timer for a booking.
func (s *Scheduler) Schedule(ctx context.Context, bookingID int64, fireAt time.Time) error {
	if s.rdb != nil {
		err := s.rdb.ZAdd(ctx, deadlineKey, redis.Z{
			Score:  float64(fireAt.Unix()),
			Member: strconv.FormatInt(bookingID, 10),
		}).Err()
		if err == nil {
			return nil
		}
		log.Printf("scheduler: redis zadd failed, falling back to local timer: %v", err)
	}
	s.armLocal(bookingID, time.Until(fireAt))
	return nil
}

// Cancel drops the deadline for a booking that paid or was resolved early.
// Missing the cancel is harmless: the expiry callback re-checks state.
func (s *Scheduler) Cancel(ctx context.Context, bookingID int64) {
	if s.rdb != nil {
		if err := s.rdb.ZRem(ctx, deadlineKey, strconv.FormatInt(bookingID, 10)).Err(); err != nil {
			log.Printf("scheduler: redis zrem failed: %v", err)
		}
	}
	s.mu.Lock()
	if t, ok := s.timers[bookingID]; ok {
		t.Stop()
		delete(s.timers, bookingID)
	}
	s.mu.Unlock()
}

// Start runs the Redis poller. With no Redis client it is a no-op; local
// timers fire on their own.
func (s *Scheduler) Start() {
	if s.rdb == nil {
		close(s.done)
		return
	}
	go s.loop()
}

func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
	s.mu.Lock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
}

func (s *Scheduler) loop() {
	defer close(s.done)
	tick := time.NewTicker(s.poll)
	defer tick.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-tick.C:
			s.drainDue(context.Background())
		}
	}
}

// drainDue pops every deadline with score <= now and fires the expiry
// callback for each. ZRem before firing keeps concurrent processes from
// double-firing the same booking.
func (s *Scheduler) drainDue(ctx context.Context) {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	members, err := s.rdb.ZRangeByScore(ctx, deadlineKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: now,
	}).Result()
	if err != nil {
		log.Printf("scheduler: redis zrangebyscore failed: %v", err)
		return
	}
	for _, m := range members {
		removed, err := s.rdb.ZRem(ctx, deadlineKey, m).Result()
		if err != nil {
			log.Printf("scheduler: redis zrem failed: %v", err)
			continue
		}
		if removed == 0 {
			continue
		}
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			log.Printf("scheduler: bad deadline member %q", m)
			continue
		}
		s.expire(ctx, id)
	}
}

func (s *Scheduler) armLocal(bookingID int64, d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[bookingID]; ok {
		t.Stop()
	}
	s.timers[bookingID] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, bookingID)
		s.mu.Unlock()
		s.expire(context.Background(), bookingID)
	})
}
