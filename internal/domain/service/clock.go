package service

import (
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/contract"
)

type realClock struct{}

// NewClock returns the wall clock.
func NewClock() contract.Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) NewTimer(d time.Duration) contract.Timer {
	return &realTimer{timer: time.NewTimer(d)}
}

type realTimer struct {
	timer *time.Timer
}

func (t *realTimer) C() <-chan time.Time {
	return t.timer.C
}

func (t *realTimer) Stop() bool {
	return t.timer.Stop()
}
