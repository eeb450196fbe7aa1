package interfaces

import (
	"context"

	"thikana_backend/internal/domain/entities"
)

// IApartmentRepository abstracts read-only access to the apartments table.

type IApartmentRepository interface {
	// ListByRent returns apartments whose rent is at least minRent. A maxRent
	// greater than zero additionally caps the rent; zero or less means no cap.
	ListByRent(ctx context.Context, minRent, maxRent float64) ([]entities.Apartment, error)
	Count(ctx context.Context) (int64, error)
}
