package dashboard

import (
	"context"
	"time"
)

// fakeGateway implements DashboardGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	snapshot DashboardSnapshot
	err      error
	calls    int
}

func (f *fakeGateway) LoadDashboard(context.Context) (DashboardSnapshot, error) {
	f.calls++
	if f.err != nil {
		return DashboardSnapshot{}, f.err
	}
	return f.snapshot, nil
}

type panicGateway struct{}

func (panicGateway) LoadDashboard(context.Context) (DashboardSnapshot, error) {
	panic("gateway exploded")
}

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
