package scheduler

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

type pendingTask struct {
	timer *clock.Timer
	seq   uint64
}

type schedulerService struct {
	Clock  clock.Clock
	Log    *zap.Logger
	mu     sync.Mutex
	tasks  map[string]pendingTask
	seq    uint64
	closed bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSchedulerService returns a keyed delayed-task runner driven by clk.
// Tasks run on their own goroutine and receive a context that is cancelled
// by Stop.
func NewSchedulerService(clk clock.Clock, logger *zap.Logger) contracts.Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &schedulerService{
		Clock:  clk,
		Log:    logger,
		tasks:  make(map[string]pendingTask),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *schedulerService) Schedule(key string, delay time.Duration, task func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.Log.Warn("schedulerService.Schedule called after Stop",
			zap.String(constvars.LoggingTaskKey, key),
		)
		return
	}

	if existing, ok := s.tasks[key]; ok {
		existing.timer.Stop()
	}

	s.seq++
	seq := s.seq
	timer := s.Clock.AfterFunc(delay, func() {
		s.run(key, seq, task)
	})
	s.tasks[key] = pendingTask{timer: timer, seq: seq}

	s.Log.Info("schedulerService.Schedule task scheduled",
		zap.String(constvars.LoggingTaskKey, key),
		zap.Duration(constvars.LoggingDelayKey, delay),
	)
}

func (s *schedulerService) run(key string, seq uint64, task func(ctx context.Context)) {
	s.mu.Lock()
	current, ok := s.tasks[key]
	if !ok || current.seq != seq || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.tasks, key)
	ctx := s.ctx
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.Log.Error("schedulerService.run task panicked",
				zap.String(constvars.LoggingTaskKey, key),
				zap.Any("panic", r),
			)
		}
	}()

	task(ctx)
}

func (s *schedulerService) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[key]
	if !ok {
		return false
	}
	existing.timer.Stop()
	delete(s.tasks, key)
	return true
}

func (s *schedulerService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *schedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for key, pending := range s.tasks {
		pending.timer.Stop()
		delete(s.tasks, key)
	}
	s.cancel()
}
