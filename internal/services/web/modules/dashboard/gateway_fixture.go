package dashboard

import (
	"context"
	"time"

	"github.com/louisbranch/socialcrm/internal/platform/icons"
)

// FixtureGateway serves the demonstration dashboard. Activity timestamps are
// relative to the injected clock so the feed always reads "5 minutes ago".
type FixtureGateway struct {
	now func() time.Time
}

// NewFixtureGateway returns a fixture gateway; nil now uses time.Now.
func NewFixtureGateway(now func() time.Time) FixtureGateway {
	if now == nil {
		now = time.Now
	}
	return FixtureGateway{now: now}
}

// LoadDashboard returns the fixture snapshot.
func (g FixtureGateway) LoadDashboard(ctx context.Context) (DashboardSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return DashboardSnapshot{}, err
	}
	now := g.now()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	return DashboardSnapshot{
		Cards: []MetricCard{
			{Title: "Total Clients", Icon: icons.IDUsers, Value: 1234, Text: "+15% from last month"},
			{Title: "Active Brands", Icon: icons.IDBriefcase, Value: 65, Text: "+3 new this week"},
			{Title: "Locations", Icon: icons.IDMapPin, Value: 89, Text: "Across 12 countries"},
			{Title: "Ongoing Projects", Icon: icons.IDTodo, Value: 32, Text: "7 due this week"},
		},
		Chart: ChartData{
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			Datasets: []ChartDataset{
				{
					Label:        "2023",
					Data:         []float64{23, 56, 78, 12, 45, 89, 34, 67, 90, 11, 55, 38},
					Color:        "#2563eb",
					BorderRadius: 5,
				},
				{
					Label:        "2024",
					Data:         []float64{32, 49, 67, 21, 50, 77, 29, 85, 92, 18, 61, 42},
					Color:        "#60a5fa",
					BorderRadius: 5,
				},
			},
		},
		Activities: []Activity{
			{Title: "New project started", Timestamp: ago(5 * time.Minute)},
			{Title: "New location added", Timestamp: ago(10 * time.Minute)},
			{Title: "New client added", Timestamp: ago(time.Hour)},
			{Title: "Location removed", Timestamp: ago(90 * time.Minute)},
			{Title: "New location added", Timestamp: ago(2 * time.Hour)},
			{Title: "Client updated", Timestamp: ago(3 * time.Hour)},
			{Title: "Client removed", Timestamp: ago(5 * time.Hour)},
			{Title: "Task finished", Timestamp: ago(12 * time.Hour)},
			{Title: "Project status updated", Timestamp: ago(24 * time.Hour)},
			{Title: "Project closed", Timestamp: ago(48 * time.Hour)},
		},
	}, nil
}
