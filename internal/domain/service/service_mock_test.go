package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/contract"
	"github.com/mensabot/mensa-bot/internal/domain/dates"
	"github.com/mensabot/mensa-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var berlin = mustLoadLocation("Europe/Berlin")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockMenuRepo         *mocks.MockMenuRepo
	mockSubscriptionRepo *mocks.MockSubscriptionRepo
	mockFetcher          *mocks.MockPageFetcher
	mockParser           *mocks.MockMenuParser
	mockNotifier         *mocks.MockNotifier
	clock                *fakeClock
}

func testConfig(urls ...string) Config {
	return Config{
		URLs:             urls,
		Location:         berlin,
		Cutover:          dates.TimeOfDay{Hour: 14, Minute: 30},
		NotificationTime: dates.TimeOfDay{Hour: 14, Minute: 30},
	}
}

func newServiceTestMock(t *testing.T, cfg Config, now time.Time) (m allMocks, svc *menuService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	menuRepo := mocks.NewMockMenuRepo(ctrl)
	dm.EXPECT().Menu().Return(menuRepo).AnyTimes()

	subscriptionRepo := mocks.NewMockSubscriptionRepo(ctrl)
	dm.EXPECT().Subscription().Return(subscriptionRepo).AnyTimes()

	m = allMocks{
		mockDataManager:      dm,
		mockMenuRepo:         menuRepo,
		mockSubscriptionRepo: subscriptionRepo,
		mockFetcher:          mocks.NewMockPageFetcher(ctrl),
		mockParser:           mocks.NewMockMenuParser(ctrl),
		mockNotifier:         mocks.NewMockNotifier(ctrl),
		clock:                newFakeClock(now),
	}

	// validate service creation
	svc = newMenuService(cfg, dm, m.mockFetcher, m.mockParser, m.mockNotifier, m.clock, discardLogger())
	require.NotNil(t, svc)

	return
}

// expectTransaction runs transaction callbacks against the mocked DataManager.
func expectTransaction(m allMocks) {
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).AnyTimes()
}

// fakeClock is a contract.Clock whose time only moves when told to.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Time
	c        chan time.Time
	stopped  bool
	fired    bool
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTimer(d time.Duration) contract.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{clock: c, deadline: c.now.Add(d), c: make(chan time.Time, 1)}
	c.timers = append(c.timers, t)
	if d <= 0 {
		t.fire(c.now)
	}
	return t
}

// Set moves the clock to now and fires every timer that is due.
func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.deadline.After(now) {
			t.fire(now)
		}
	}
}

func (c *fakeClock) TimerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *fakeClock) Timer(i int) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[i]
}

func (t *fakeTimer) fire(now time.Time) {
	t.fired = true
	t.c <- now
}

func (t *fakeTimer) C() <-chan time.Time {
	return t.c
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (t *fakeTimer) Stopped() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.stopped
}
