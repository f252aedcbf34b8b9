//go:build unit

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KingCastle/Javan/internal/infra/notify"
	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]shared.NotificationJob, error) {
	args := m.Called(ctx, now, leaseUntil, limit)
	return args.Get(0).([]shared.NotificationJob), args.Error(1)
}

func (m *MockJobStore) MarkSent(ctx context.Context, jobID uuid.UUID) (bool, error) {
	args := m.Called(ctx, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobStore) RecordFailure(ctx context.Context, jobID uuid.UUID, status, lastError string, retryAt time.Time) error {
	args := m.Called(ctx, jobID, status, lastError, retryAt)
	return args.Error(0)
}

type recordingSender struct {
	mu   sync.Mutex
	sent []notify.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
	drops    int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{outcomes: make(map[string]int)}
}

func (m *countingMetrics) ObserveNotification(_, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *countingMetrics) ObserveQueueDrop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drops++
}

func (m *countingMetrics) outcome(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[name]
}

var dispatcherNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type dispatcherFixture struct {
	store   *MockJobStore
	sender  *recordingSender
	metrics *countingMetrics
	d       *notify.Dispatcher
}

func newDispatcherFixture(t *testing.T, opts notify.Options) *dispatcherFixture {
	t.Helper()
	f := &dispatcherFixture{
		store:   new(MockJobStore),
		sender:  &recordingSender{},
		metrics: newCountingMetrics(),
	}
	composer := notify.NewComposer([]string{"ops@example.com"})
	f.d = notify.NewDispatcher(f.store, composer, f.sender, f.metrics, clock.NewMockClock(dispatcherNow), opts)
	return f
}

// start runs the pool with an idle sweeper.
func (f *dispatcherFixture) start(t *testing.T) {
	t.Helper()
	f.store.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]shared.NotificationJob{}, nil).Maybe()
	f.d.Start(context.Background())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, f.d.Stop(ctx))
	})
}

func confirmationJob(t *testing.T, attempts int) shared.NotificationJob {
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     shared.NotificationBookingConfirmation,
		Topic:    uuid.NewString(),
		Payload:  noticePayload(t, nil),
		Attempts: attempts,
	}
}

func TestDispatcherDeliversEnqueuedJob(t *testing.T) {
	f := newDispatcherFixture(t, notify.Options{Workers: 2, QueueSize: 4, MaxAttempts: 3, SweepInterval: time.Hour})
	job := confirmationJob(t, 0)
	f.store.On("MarkSent", mock.Anything, job.ID).Return(true, nil).Once()
	f.start(t)

	f.d.Enqueue(context.Background(), job)

	require.Eventually(t, func() bool { return f.metrics.outcome("sent") == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, f.sender.count())
	f.store.AssertCalled(t, "MarkSent", mock.Anything, job.ID)
}

func TestDispatcherRetriesFailedSend(t *testing.T) {
	f := newDispatcherFixture(t, notify.Options{Workers: 1, QueueSize: 4, MaxAttempts: 3, SweepInterval: time.Hour})
	f.sender.err = errors.New("smtp: 421 try again later")
	job := confirmationJob(t, 1)

	retryAt := dispatcherNow.Add(notify.Backoff(1))
	f.store.On("RecordFailure", mock.Anything, job.ID, "queued", "smtp: 421 try again later", retryAt).Return(nil).Once()
	f.start(t)

	f.d.Enqueue(context.Background(), job)

	require.Eventually(t, func() bool { return f.metrics.outcome("retry") == 1 }, 2*time.Second, 10*time.Millisecond)
	f.store.AssertExpectations(t)
	f.store.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
}

func TestDispatcherGivesUpAfterMaxAttempts(t *testing.T) {
	f := newDispatcherFixture(t, notify.Options{Workers: 1, QueueSize: 4, MaxAttempts: 3, SweepInterval: time.Hour})
	f.sender.err = errors.New("smtp: 550 mailbox unavailable")
	job := confirmationJob(t, 2)

	f.store.On("RecordFailure", mock.Anything, job.ID, "failed", mock.Anything, dispatcherNow).Return(nil).Once()
	f.start(t)

	f.d.Enqueue(context.Background(), job)

	require.Eventually(t, func() bool { return f.metrics.outcome("failed") == 1 }, 2*time.Second, 10*time.Millisecond)
	f.store.AssertExpectations(t)
}

func TestDispatcherFailsUncomposableJobWithoutSending(t *testing.T) {
	f := newDispatcherFixture(t, notify.Options{Workers: 1, QueueSize: 4, MaxAttempts: 5, SweepInterval: time.Hour})
	job := shared.NotificationJob{ID: uuid.New(), Kind: shared.NotificationBookingConfirmation, Payload: []byte("garbage")}

	f.store.On("RecordFailure", mock.Anything, job.ID, "failed", mock.Anything, mock.Anything).Return(nil).Once()
	f.start(t)

	f.d.Enqueue(context.Background(), job)

	require.Eventually(t, func() bool { return f.metrics.outcome("failed") == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, f.sender.count())
}

func TestDispatcherEnqueueNeverBlocks(t *testing.T) {
	f := newDispatcherFixture(t, notify.Options{QueueSize: 2})

	jobs := make([]shared.NotificationJob, 5)
	for i := range jobs {
		jobs[i] = confirmationJob(t, 0)
	}

	done := make(chan struct{})
	go func() {
		for _, job := range jobs {
			f.d.Enqueue(context.Background(), job)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
	assert.Equal(t, 3, f.metrics.drops)
	assert.Equal(t, 3, f.metrics.outcome("dropped"))
}

func TestDispatcherSweep(t *testing.T) {
	t.Run("claims only what the queue can take", func(t *testing.T) {
		f := newDispatcherFixture(t, notify.Options{QueueSize: 3})
		f.d.Enqueue(context.Background(), confirmationJob(t, 0))

		claimed := []shared.NotificationJob{confirmationJob(t, 1), confirmationJob(t, 2)}
		f.store.On("ClaimDue", mock.Anything, dispatcherNow, dispatcherNow.Add(5*time.Minute), 2).Return(claimed, nil).Once()

		n := f.d.Sweep(context.Background())

		assert.Equal(t, 2, n)
		assert.Zero(t, f.metrics.drops)
		f.store.AssertExpectations(t)
	})

	t.Run("full queue skips the store", func(t *testing.T) {
		f := newDispatcherFixture(t, notify.Options{QueueSize: 1})
		f.d.Enqueue(context.Background(), confirmationJob(t, 0))

		assert.Equal(t, 0, f.d.Sweep(context.Background()))
		f.store.AssertNotCalled(t, "ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store error claims nothing", func(t *testing.T) {
		f := newDispatcherFixture(t, notify.Options{QueueSize: 2})
		f.store.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]shared.NotificationJob(nil), errors.New("connection refused")).Once()

		assert.Equal(t, 0, f.d.Sweep(context.Background()))
	})
}

func TestDispatcherStop(t *testing.T) {
	t.Run("never started", func(t *testing.T) {
		f := newDispatcherFixture(t, notify.Options{})
		assert.NoError(t, f.d.Stop(context.Background()))
	})

	t.Run("started pool drains", func(t *testing.T) {
		f := newDispatcherFixture(t, notify.Options{Workers: 3, SweepInterval: time.Hour})
		f.store.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]shared.NotificationJob{}, nil).Maybe()
		f.d.Start(context.Background())

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		assert.NoError(t, f.d.Stop(ctx))
	})
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: -1, want: 30 * time.Second},
		{attempts: 0, want: 30 * time.Second},
		{attempts: 1, want: time.Minute},
		{attempts: 3, want: 4 * time.Minute},
		{attempts: 7, want: time.Hour},
		{attempts: 40, want: time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, notify.Backoff(tt.attempts), "attempts=%d", tt.attempts)
	}
}
