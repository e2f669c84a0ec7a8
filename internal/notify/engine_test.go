package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	ctx := context.Background()
	now := time.Now()
	later, err := engine.Schedule(ctx, Notification{Title: "later", Trigger: Trigger{At: now.Add(80 * time.Millisecond)}})
	require.NoError(t, err)
	sooner, err := engine.Schedule(ctx, Notification{Title: "sooner", Trigger: Trigger{At: now.Add(20 * time.Millisecond)}})
	require.NoError(t, err)
	require.NotEqual(t, later, sooner)

	first := waitDelivery(t, engine.C(), time.Second)
	second := waitDelivery(t, engine.C(), time.Second)
	assert.Equal(t, "sooner", first.Title)
	assert.Equal(t, sooner, first.ID)
	assert.Equal(t, "later", second.Title)
	assert.Equal(t, later, second.ID)
}

func TestEngineCancelledRegistrationNeverFires(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	ctx := context.Background()
	now := time.Now()
	doomed, err := engine.Schedule(ctx, Notification{Title: "doomed", Trigger: Trigger{At: now.Add(30 * time.Millisecond)}})
	require.NoError(t, err)
	_, err = engine.Schedule(ctx, Notification{Title: "kept", Trigger: Trigger{At: now.Add(60 * time.Millisecond)}})
	require.NoError(t, err)

	require.NoError(t, engine.Cancel(ctx, doomed))

	got := waitDelivery(t, engine.C(), time.Second)
	assert.Equal(t, "kept", got.Title)
}

func TestEngineCancelToleratesUnknownID(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	ctx := context.Background()
	require.NoError(t, engine.Cancel(ctx, "no-such-registration"))
	require.NoError(t, engine.Cancel(ctx, ""))

	id, err := engine.Schedule(ctx, Notification{Trigger: Trigger{At: time.Now().Add(time.Hour)}})
	require.NoError(t, err)
	require.NoError(t, engine.Cancel(ctx, id))
	require.NoError(t, engine.Cancel(ctx, id))
	assert.Equal(t, 0, engine.Pending())
}

func TestEngineCancelledSetStaysBounded(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	ctx := context.Background()
	for i := 0; i < 50; i++ {
		require.NoError(t, engine.Cancel(ctx, "never-registered"))
	}
	assert.Equal(t, 0, cancelledLen(engine))

	// A fired single-shot id is no longer in the queue, so a late cancel
	// leaves no trace either.
	id, err := engine.Schedule(ctx, Notification{Title: "once", Trigger: Trigger{At: time.Now().Add(20 * time.Millisecond)}})
	require.NoError(t, err)
	waitDelivery(t, engine.C(), time.Second)
	require.NoError(t, engine.Cancel(ctx, id))
	assert.Equal(t, 0, cancelledLen(engine))

	// Cancelling a queued id is recorded, and the entry is gone once the
	// registration is dropped.
	queued, err := engine.Schedule(ctx, Notification{Title: "pending", Trigger: Trigger{At: time.Now().Add(30 * time.Millisecond)}})
	require.NoError(t, err)
	require.NoError(t, engine.Cancel(ctx, queued))

	deadline := time.After(time.Second)
	for cancelledLen(engine) != 0 {
		select {
		case <-deadline:
			t.Fatalf("cancelled entry was never swept")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func cancelledLen(e *Engine) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cancelled)
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	ctx := context.Background()
	at := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		_, err := engine.Schedule(ctx, Notification{Title: "evt", Trigger: Trigger{At: at}})
		require.NoError(t, err)
	}

	time.Sleep(120 * time.Millisecond)
	assert.NotZero(t, engine.Dropped())
}

func TestEngineRepeatingTriggerRequeues(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	// A repeating clock trigger stays pending after its id is handed out.
	id, err := engine.Schedule(context.Background(), Notification{
		Title:   "daily",
		Trigger: Trigger{Hour: 9, Minute: 0, Repeats: true},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, engine.Pending())
}

func TestScheduleValidatesTrigger(t *testing.T) {
	engine := NewEngine(1)
	ctx := context.Background()

	_, err := engine.Schedule(ctx, Notification{Title: "bad"})
	assert.ErrorIs(t, err, ErrInvalidTrigger)

	_, err = engine.Schedule(ctx, Notification{Trigger: Trigger{Hour: 99, Repeats: true}})
	assert.ErrorIs(t, err, ErrInvalidTrigger)
}

func TestScheduleAfterStop(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()

	_, err := engine.Schedule(context.Background(), Notification{Trigger: Trigger{At: time.Now().Add(time.Hour)}})
	assert.ErrorIs(t, err, ErrEngineStopped)
}

func waitDelivery(t *testing.T, ch <-chan Delivery, timeout time.Duration) Delivery {
	t.Helper()
	select {
	case d := <-ch:
		return d
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for delivery")
		return Delivery{}
	}
}
