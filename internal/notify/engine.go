package notify

import (
	"container/heap"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTrigger = errors.New("notify: invalid trigger")
	ErrEngineStopped  = errors.New("notify: engine stopped")
)

type registration struct {
	id      string
	note    Notification
	fireAt  time.Time
	repeats bool
}

type triggerQueue []registration

func (q triggerQueue) Len() int { return len(q) }

func (q triggerQueue) Less(i, j int) bool {
	return q[i].fireAt.Before(q[j].fireAt)
}

func (q triggerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *triggerQueue) Push(x any) {
	*q = append(*q, x.(registration))
}

func (q *triggerQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// Engine is a process-local Gateway: a heap of pending registrations drained
// by a single timer loop. Deliveries are emitted on a non-blocking channel; a
// slow consumer loses deliveries rather than stalling the loop.
type Engine struct {
	mu        sync.Mutex
	queue     triggerQueue
	cancelled map[string]struct{}
	out       chan Delivery
	wakeup    chan struct{}
	stopCh    chan struct{}
	doneCh    chan struct{}
	started   bool
	stopped   bool
	dropped   uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:     make(triggerQueue, 0),
		cancelled: make(map[string]struct{}),
		out:       make(chan Delivery, bufferSize),
		wakeup:    make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Delivery {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.stopped = true
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule registers a notification and returns its registration id.
func (e *Engine) Schedule(_ context.Context, n Notification) (string, error) {
	fireAt := firstFire(n.Trigger, time.Now())
	if fireAt.IsZero() {
		return "", ErrInvalidTrigger
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return "", ErrEngineStopped
	}

	id := uuid.NewString()
	heap.Push(&e.queue, registration{id: id, note: n, fireAt: fireAt, repeats: n.Trigger.Repeats})
	e.signalWakeup()
	return id, nil
}

// Cancel drops a pending registration. Unknown, already-fired and
// already-cancelled ids are tolerated; only ids still in the queue are
// marked, so the cancelled set stays bounded by the queue.
func (e *Engine) Cancel(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, reg := range e.queue {
		if reg.id == id {
			e.cancelled[id] = struct{}{}
			e.signalWakeup()
			break
		}
	}
	return nil
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

// Pending reports the number of live (not cancelled) registrations.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, reg := range e.queue {
		if _, gone := e.cancelled[reg.id]; !gone {
			n++
		}
	}
	return n
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.fireAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			for _, reg := range e.popDue(time.Now()) {
				select {
				case e.out <- Delivery{ID: reg.id, Title: reg.note.Title, Body: reg.note.Body, At: reg.fireAt}:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (registration, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dropCancelledHead()
	if len(e.queue) == 0 {
		return registration{}, false
	}
	return e.queue[0], true
}

// popDue removes and returns every live registration whose fire time has
// passed, re-queueing repeating ones a day later under the same id.
func (e *Engine) popDue(now time.Time) []registration {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]registration, 0)
	for len(e.queue) > 0 {
		next := e.queue[0]
		if next.fireAt.After(now) {
			break
		}
		reg := heap.Pop(&e.queue).(registration)
		if _, gone := e.cancelled[reg.id]; gone {
			delete(e.cancelled, reg.id)
			continue
		}
		out = append(out, reg)
		if reg.repeats {
			reg.fireAt = reg.fireAt.AddDate(0, 0, 1)
			heap.Push(&e.queue, reg)
		}
	}
	return out
}

func (e *Engine) dropCancelledHead() {
	for len(e.queue) > 0 {
		if _, gone := e.cancelled[e.queue[0].id]; !gone {
			return
		}
		reg := heap.Pop(&e.queue).(registration)
		delete(e.cancelled, reg.id)
	}
}

// firstFire resolves a trigger to its first absolute fire time. A repeating
// trigger fires at the next occurrence of Hour:Minute after now.
func firstFire(tr Trigger, now time.Time) time.Time {
	if !tr.Repeats {
		return tr.At
	}
	if tr.Hour < 0 || tr.Hour > 23 || tr.Minute < 0 || tr.Minute > 59 {
		return time.Time{}
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), tr.Hour, tr.Minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
