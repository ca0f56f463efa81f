package dashboard

import (
	"context"

	apperrors "github.com/louisbranch/socialcrm/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) LoadDashboard(context.Context) (DashboardSnapshot, error) {
	return DashboardSnapshot{}, apperrors.E(apperrors.KindUnavailable, "dashboard service is not configured")
}
