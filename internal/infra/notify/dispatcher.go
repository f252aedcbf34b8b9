package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KingCastle/Javan/internal/pkg/clock"
	"github.com/KingCastle/Javan/internal/pkg/config"
	"github.com/KingCastle/Javan/internal/pkg/errs"
	"github.com/KingCastle/Javan/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	statusQueued = "queued"
	statusFailed = "failed"

	sendTimeout   = 30 * time.Second
	settleTimeout = 5 * time.Second
	leaseDuration = 5 * time.Minute
	backoffBase   = 30 * time.Second
	backoffMax    = time.Hour
)

const (
	outcomeSent    = "sent"
	outcomeRetry   = "retry"
	outcomeFailed  = "failed"
	outcomeDropped = "dropped"
)

type JobStore interface {
	ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]shared.NotificationJob, error)
	MarkSent(ctx context.Context, jobID uuid.UUID) (bool, error)
	RecordFailure(ctx context.Context, jobID uuid.UUID, status, lastError string, retryAt time.Time) error
}

type Metrics interface {
	ObserveNotification(kind, outcome string)
	ObserveQueueDrop()
}

type Options struct {
	Workers       int
	QueueSize     int
	MaxAttempts   int
	SweepInterval time.Duration
}

func OptionsFromConfig(cfg config.NotifyConfig) Options {
	return Options{
		Workers:       cfg.Workers,
		QueueSize:     cfg.QueueSize,
		MaxAttempts:   cfg.MaxAttempts,
		SweepInterval: cfg.SweepInterval,
	}
}

// Dispatcher delivers outbox jobs on a fixed worker pool. Jobs arrive either
// straight from a committed workflow via Enqueue or from the periodic sweep
// of due rows, so every job is delivered at least once.
type Dispatcher struct {
	store    JobStore
	composer *Composer
	sender   Sender
	metrics  Metrics
	clock    clock.Clock
	opts     Options

	queue  chan shared.NotificationJob
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(store JobStore, composer *Composer, sender Sender, metrics Metrics, clk clock.Clock, opts Options) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = 30 * time.Second
	}

	return &Dispatcher{
		store:    store,
		composer: composer,
		sender:   sender,
		metrics:  metrics,
		clock:    clk,
		opts:     opts,
		queue:    make(chan shared.NotificationJob, opts.QueueSize),
	}
}

// Enqueue never blocks. A job that does not fit stays queued in the outbox
// and is picked up by a later sweep.
func (d *Dispatcher) Enqueue(_ context.Context, job shared.NotificationJob) {
	select {
	case d.queue <- job:
	default:
		d.metrics.ObserveQueueDrop()
		d.metrics.ObserveNotification(job.Kind.String(), outcomeDropped)
		slog.Warn("notification queue full, leaving job to sweeper",
			"job_id", job.ID.String(),
			"kind", job.Kind.String())
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(context.WithoutCancel(ctx))

	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.work(ctx)
		}()
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.sweepLoop(ctx)
	}()

	slog.Info("notification dispatcher started",
		"workers", d.opts.Workers,
		"queue_size", d.opts.QueueSize,
		"sweep_interval", d.opts.SweepInterval.String())
}

// Stop waits for in-flight deliveries; jobs still buffered remain queued in the outbox.
func (d *Dispatcher) Stop(ctx context.Context) error {
	if d.cancel == nil {
		return nil
	}
	d.cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "notification dispatcher did not drain")
	}
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-d.queue:
			d.deliver(ctx, job)
		}
	}
}

func (d *Dispatcher) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(d.opts.SweepInterval)
	defer ticker.Stop()

	d.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Sweep(ctx)
		}
	}
}

// Sweep claims as many due jobs as the queue can take right now.
func (d *Dispatcher) Sweep(ctx context.Context) int {
	free := cap(d.queue) - len(d.queue)
	if free <= 0 {
		return 0
	}

	now := d.clock.Now()
	jobs, err := d.store.ClaimDue(ctx, now, now.Add(leaseDuration), free)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("failed to claim notification jobs", "error", err.Error())
		}
		return 0
	}

	for _, job := range jobs {
		d.Enqueue(ctx, job)
	}
	if len(jobs) > 0 {
		slog.Debug("claimed notification jobs", "count", len(jobs))
	}
	return len(jobs)
}

func (d *Dispatcher) deliver(ctx context.Context, job shared.NotificationJob) {
	msg, err := d.composer.Compose(job)
	if err != nil {
		// a malformed job never becomes deliverable
		d.settleFailure(job, err, true)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	err = d.sender.Send(sendCtx, msg)
	cancel()
	if err != nil {
		d.settleFailure(job, err, job.Attempts+1 >= d.opts.MaxAttempts)
		return
	}

	settleCtx, cancelSettle := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancelSettle()

	updated, err := d.store.MarkSent(settleCtx, job.ID)
	if err != nil {
		slog.Error("notification sent but not marked",
			"job_id", job.ID.String(),
			"kind", job.Kind.String(),
			"error", err.Error())
		return
	}
	if !updated {
		slog.Debug("notification already settled", "job_id", job.ID.String())
	}
	d.metrics.ObserveNotification(job.Kind.String(), outcomeSent)
}

func (d *Dispatcher) settleFailure(job shared.NotificationJob, cause error, final bool) {
	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()

	now := d.clock.Now()
	status, retryAt, outcome := statusQueued, now.Add(Backoff(job.Attempts)), outcomeRetry
	if final {
		status, retryAt, outcome = statusFailed, now, outcomeFailed
	}

	if err := d.store.RecordFailure(ctx, job.ID, status, cause.Error(), retryAt); err != nil {
		slog.Error("failed to record notification failure",
			"job_id", job.ID.String(),
			"error", err.Error())
	}
	d.metrics.ObserveNotification(job.Kind.String(), outcome)

	slog.Warn("notification delivery failed",
		"job_id", job.ID.String(),
		"kind", job.Kind.String(),
		"attempt", job.Attempts+1,
		"final", final,
		"error", cause.Error())
}

// Backoff doubles from backoffBase per previous attempt, capped at backoffMax.
func Backoff(attempts int) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > 16 {
		return backoffMax
	}
	wait := backoffBase << attempts
	if wait > backoffMax {
		return backoffMax
	}
	return wait
}
