package opqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ErrStopped is delivered to tasks that were still queued when the queue
// stopped, and returned by Enqueue afterwards.
var ErrStopped = errors.New("operation queue stopped")

// Task is a unit of persistence work.
type Task struct {
	// Key groups related tasks (e.g. an order id). Empty means no retry.
	Key string
	// Name is used in logs.
	Name string
	// Run performs the work. It should honor ctx cancellation: after a
	// timeout the worker still waits for Run to return before starting the
	// next task.
	Run func(ctx context.Context) error
	// Timeout overrides Config.TaskTimeout when positive.
	Timeout time.Duration
	// OnDone receives the terminal outcome: nil, the last error, or ErrStopped.
	OnDone func(err error)
}

type Config struct {
	TaskTimeout time.Duration
	RetryDelay  time.Duration
	MaxAttempts int
	IdleDelay   time.Duration
}

func DefaultConfig() Config {
	return Config{
		TaskTimeout: 20 * time.Second,
		RetryDelay:  time.Second,
		MaxAttempts: 3,
		IdleDelay:   100 * time.Millisecond,
	}
}

type entry struct {
	task Task
}

// Queue is a single-worker FIFO task runner with per-key retry.
// Enqueue is safe for concurrent use.
type Queue struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	ready   []*entry
	retries map[string]int
	waiting map[string]*entry
	timers  map[*entry]*time.Timer
	started bool
	stopped bool

	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

func New(cfg Config, logger *slog.Logger) *Queue {
	def := DefaultConfig()
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = def.TaskTimeout
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.IdleDelay < 0 {
		cfg.IdleDelay = 0
	}

	return &Queue{
		cfg:     cfg,
		logger:  logger.With("component", "operation_queue"),
		retries: make(map[string]int),
		waiting: make(map[string]*entry),
		timers:  make(map[*entry]*time.Timer),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Start launches the worker. It returns immediately; the worker runs until
// Stop is called or ctx is cancelled.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	if q.started || q.stopped {
		q.mu.Unlock()
		return
	}
	q.started = true
	ctx, q.cancel = context.WithCancel(ctx)
	q.mu.Unlock()

	go q.work(ctx)
}

// Stop halts the worker, waits for the running task to finish and resolves
// every task still queued or waiting for a retry with ErrStopped.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	started := q.started
	cancel := q.cancel
	q.mu.Unlock()

	if started {
		cancel()
		<-q.done
	}

	q.mu.Lock()
	abandoned := q.ready
	q.ready = nil
	for e, timer := range q.timers {
		timer.Stop()
		abandoned = append(abandoned, e)
	}
	q.timers = make(map[*entry]*time.Timer)
	q.waiting = make(map[string]*entry)
	q.mu.Unlock()

	for _, e := range abandoned {
		finish(e, ErrStopped)
	}
}

// Enqueue appends task to the queue.
func (q *Queue) Enqueue(task Task) error {
	if task.Run == nil {
		return errs.NewValueIsRequiredError("task run")
	}

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrStopped
	}
	q.ready = append(q.ready, &entry{task: task})
	q.mu.Unlock()

	q.signal()
	return nil
}

// Len is the number of tasks queued or waiting for a retry.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ready) + len(q.timers)
}

// Retries returns the current failure counter of key.
func (q *Queue) Retries(key string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.retries[key]
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) work(ctx context.Context) {
	defer close(q.done)

	for {
		e := q.next()
		if e == nil {
			select {
			case <-q.wake:
				continue
			case <-ctx.Done():
				return
			}
		}

		q.run(ctx, e)

		if q.cfg.IdleDelay > 0 {
			timer := time.NewTimer(q.cfg.IdleDelay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return
			}
		}
	}
}

// next pops the oldest task whose key has no retry waiting.
func (q *Queue) next() *entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.ready {
		if e.task.Key != "" {
			if _, blocked := q.waiting[e.task.Key]; blocked {
				continue
			}
		}
		q.ready = append(q.ready[:i], q.ready[i+1:]...)
		return e
	}
	return nil
}

func (q *Queue) run(ctx context.Context, e *entry) {
	err := q.execute(ctx, e)
	key := e.task.Key
	log := q.logger.With("task", e.task.Name, "key", key)

	if err == nil {
		q.resetRetries(key)
		finish(e, nil)
		return
	}

	if ctx.Err() != nil {
		log.WarnContext(ctx, "Task interrupted by shutdown", "error", err)
		finish(e, ErrStopped)
		return
	}

	if key == "" || errs.IsPermanent(err) {
		q.resetRetries(key)
		log.WarnContext(ctx, "Task failed without retry", "error", err, "permanent", errs.IsPermanent(err))
		finish(e, err)
		return
	}

	q.mu.Lock()
	q.retries[key]++
	attempt := q.retries[key]
	if attempt >= q.cfg.MaxAttempts {
		delete(q.retries, key)
		q.mu.Unlock()
		log.ErrorContext(ctx, "Task dropped after retries", "attempts", attempt, "error", err)
		finish(e, err)
		return
	}

	delay := time.Duration(attempt) * q.cfg.RetryDelay
	q.waiting[key] = e
	q.timers[e] = time.AfterFunc(delay, func() { q.requeue(e) })
	q.mu.Unlock()

	log.WarnContext(ctx, "Task failed, retry scheduled", "attempt", attempt, "delay", delay, "error", err)
}

// requeue puts a retried task back ahead of any later task with the same key.
func (q *Queue) requeue(e *entry) {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	delete(q.timers, e)
	delete(q.waiting, e.task.Key)

	pos := len(q.ready)
	for i, other := range q.ready {
		if other.task.Key == e.task.Key {
			pos = i
			break
		}
	}
	q.ready = append(q.ready, nil)
	copy(q.ready[pos+1:], q.ready[pos:])
	q.ready[pos] = e
	q.mu.Unlock()

	q.signal()
}

func (q *Queue) execute(ctx context.Context, e *entry) error {
	timeout := e.task.Timeout
	if timeout <= 0 {
		timeout = q.cfg.TaskTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("task panicked: %v", r)
			}
		}()
		result <- e.task.Run(runCtx)
	}()

	select {
	case err := <-result:
		return err
	case <-runCtx.Done():
	}

	// A task that ignores ctx still holds the worker until it returns.
	select {
	case <-result:
	default:
		started := time.Now()
		<-result
		q.logger.WarnContext(ctx, "Task overran its timeout",
			"task", e.task.Name, "key", e.task.Key, "overrun", time.Since(started))
	}
	return errs.NewTransientBackendError(e.task.Name, runCtx.Err())
}

func (q *Queue) resetRetries(key string) {
	if key == "" {
		return
	}
	q.mu.Lock()
	delete(q.retries, key)
	q.mu.Unlock()
}

func finish(e *entry, err error) {
	if e.task.OnDone != nil {
		e.task.OnDone(err)
	}
}
