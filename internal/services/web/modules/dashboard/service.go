package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/louisbranch/socialcrm/internal/platform/icons"
	"github.com/louisbranch/socialcrm/internal/services/web/components/ui"
	apperrors "github.com/louisbranch/socialcrm/internal/services/web/platform/errors"
)

// maxActivities bounds the recent activity feed.
const maxActivities = 10

// MetricCard is one headline figure on the dashboard.
type MetricCard struct {
	Title string
	Icon  icons.ID
	Value int
	Text  string
}

// ChartData is the grouped bar chart payload.
type ChartData = ui.ChartData

// ChartDataset is one chart series.
type ChartDataset = ui.ChartDataset

// Activity is one entry of the recent activity feed.
type Activity struct {
	Title     string
	Timestamp time.Time
}

// DashboardSnapshot contains everything the dashboard page renders.
type DashboardSnapshot struct {
	Cards      []MetricCard
	Chart      ChartData
	Activities []Activity
}

// DashboardGateway loads dashboard snapshot data.
type DashboardGateway interface {
	LoadDashboard(context.Context) (DashboardSnapshot, error)
}

// DashboardView is the snapshot normalized for rendering.
type DashboardView struct {
	Cards      []MetricCard
	Chart      ChartData
	Activities []Activity
}

type service struct {
	readGateway DashboardGateway
}

func newService(gateway DashboardGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{readGateway: gateway}
}

func (s service) loadDashboard(ctx context.Context) (DashboardView, error) {
	snapshot, err := s.readGateway.LoadDashboard(ctx)
	if err != nil {
		return DashboardView{}, fmt.Errorf("load dashboard: %w", err)
	}
	if err := validateChart(snapshot.Chart); err != nil {
		return DashboardView{}, err
	}

	activities := make([]Activity, 0, len(snapshot.Activities))
	for _, activity := range snapshot.Activities {
		if strings.TrimSpace(activity.Title) == "" {
			continue
		}
		activities = append(activities, activity)
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}

	return DashboardView{
		Cards:      snapshot.Cards,
		Chart:      snapshot.Chart,
		Activities: activities,
	}, nil
}

func validateChart(chart ChartData) error {
	for _, dataset := range chart.Datasets {
		if len(dataset.Data) > len(chart.Labels) {
			return apperrors.E(apperrors.KindUnknown, fmt.Sprintf(
				"chart dataset %q has %d values for %d labels", dataset.Label, len(dataset.Data), len(chart.Labels)))
		}
	}
	return nil
}
