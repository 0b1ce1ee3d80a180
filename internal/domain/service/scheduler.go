package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/contract"
	"github.com/mensabot/mensa-bot/internal/domain/dates"
)

// State of the Scheduler. Cancelled is terminal.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateFiring
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateFiring:
		return "firing"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Scheduler runs job once a day when the wall clock in loc shows at.
type Scheduler struct {
	clock  contract.Clock
	loc    *time.Location
	at     dates.TimeOfDay
	job    func(ctx context.Context)
	logger *slog.Logger

	mu       sync.Mutex
	state    State
	stopChan chan struct{}
	done     chan struct{}
}

// NewScheduler creates an idle scheduler. Fired jobs run on their own
// goroutine and are not cancelled by Stop.
func NewScheduler(clock contract.Clock, loc *time.Location, at dates.TimeOfDay, job func(ctx context.Context), logger *slog.Logger) *Scheduler {
	return &Scheduler{
		clock:    clock,
		loc:      loc,
		at:       at,
		job:      job,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return
	}
	s.logger.Info("Scheduler starting", "at", s.at.String(), "timezone", s.loc.String())
	s.state = StateArmed
	go s.mainLoop()
}

// Stop cancels the scheduler and waits for its loop to exit. A pending
// trigger is dropped without firing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	switch s.state {
	case StateCancelled:
		s.mu.Unlock()
		return
	case StateIdle:
		s.state = StateCancelled
		close(s.stopChan)
		s.mu.Unlock()
		return
	}
	s.logger.Info("Scheduler stopping")
	s.state = StateCancelled
	close(s.stopChan)
	s.mu.Unlock()

	<-s.done
}

func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// transition moves to next unless the scheduler was cancelled.
func (s *Scheduler) transition(next State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCancelled {
		return false
	}
	s.state = next
	return true
}

func (s *Scheduler) mainLoop() {
	defer close(s.done)

	for {
		now := s.clock.Now()
		next := dates.NextTrigger(now, s.loc, s.at)
		timer := s.clock.NewTimer(next.Sub(now))

		if !s.transition(StateArmed) {
			timer.Stop()
			return
		}
		s.logger.Info("Next menu fetch scheduled", "at", next.Format(time.RFC3339))

		select {
		case <-timer.C():
			select {
			case <-s.stopChan:
				return
			default:
			}
			if !s.transition(StateFiring) {
				return
			}
			s.logger.Info("Scheduled menu fetch firing")
			go s.job(context.Background())

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}
