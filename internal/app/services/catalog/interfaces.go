package catalog

import (
	"context"

	"petfirst-service/internal/app/models"
)

// CatalogRepository is the read-only view of the service catalog used when
// resolving bookings and notification display metadata.
type CatalogRepository interface {
	FindServiceByID(ctx context.Context, serviceID string) (*models.Service, error)
	FindServiceBySlug(ctx context.Context, slug string) (*models.Service, error)
	FindServiceItemWithService(ctx context.Context, serviceItemID string) (*models.ServiceItem, *models.Service, error)
	FindBranchByID(ctx context.Context, branchID string) (*models.Branch, error)
}
