package dispatch

import (
	"context"

	"github.com/fleetyard/dispatch/internal/pkg/models"
)

// ViewCache caches assembled dispatch detail views. Entries are
// invalidated on every status transition.
type ViewCache interface {
	GetView(ctx context.Context, dispatchID string) (*models.DispatchWithDetails, error)
	SetView(ctx context.Context, view *models.DispatchWithDetails) error
	InvalidateView(ctx context.Context, dispatchID string) error
}
