package usecase

import (
	"context"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"
)

const apartmentsPageSize = 6

// ApartmentPage is one page of listings plus the filtered total the frontend
// uses for its pager.
type ApartmentPage struct {
	Apartments []entities.Apartment `json:"apartments"`
	TotalCount int                  `json:"totalCount"`
}

type IApartmentUseCase interface {
	ListPage(ctx context.Context, page int, minRent, maxRent float64) (ApartmentPage, error)
}

type ApartmentUseCase struct {
	repo interfaces.IApartmentRepository
}

var _ IApartmentUseCase = (*ApartmentUseCase)(nil)

func NewApartmentUseCase(repo interfaces.IApartmentRepository) *ApartmentUseCase {
	return &ApartmentUseCase{repo: repo}
}

// ListPage returns the page-th slice (1-based, fixed size 6) of apartments
// whose rent falls inside [minRent, maxRent]. A maxRent of zero or less means
// no upper bound; the repository builds the filter accordingly, since DynamoDB
// rejects number literals beyond its 38-digit range. The slicing happens in
// memory after a filtered scan; the listing table is catalogue-sized.
func (u *ApartmentUseCase) ListPage(ctx context.Context, page int, minRent, maxRent float64) (ApartmentPage, error) {
	if page < 1 {
		page = 1
	}

	apartments, err := u.repo.ListByRent(ctx, minRent, maxRent)
	if err != nil {
		return ApartmentPage{}, err
	}

	total := len(apartments)
	start := (page - 1) * apartmentsPageSize
	if start > total {
		start = total
	}
	end := start + apartmentsPageSize
	if end > total {
		end = total
	}

	return ApartmentPage{Apartments: apartments[start:end], TotalCount: total}, nil
}
