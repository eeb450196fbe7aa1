package response

import (
	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase"
)

type ApartmentResponse struct {
	ID          string  `json:"id"`
	FloorNo     string  `json:"floorNo"`
	BlockName   string  `json:"blockName"`
	ApartmentNo string  `json:"apartmentNo"`
	Rent        float64 `json:"rent"`
	Image       string  `json:"image,omitempty"`
}

func FromApartment(a entities.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:          a.ID,
		FloorNo:     a.FloorNo,
		BlockName:   a.BlockName,
		ApartmentNo: a.ApartmentNo,
		Rent:        a.Rent,
		Image:       a.Image,
	}
}

type ApartmentPageResponse struct {
	Apartments []ApartmentResponse `json:"apartments"`
	TotalCount int                 `json:"totalCount"`
}

func FromApartmentPage(page usecase.ApartmentPage) ApartmentPageResponse {
	apartments := make([]ApartmentResponse, 0, len(page.Apartments))
	for _, a := range page.Apartments {
		apartments = append(apartments, FromApartment(a))
	}
	return ApartmentPageResponse{Apartments: apartments, TotalCount: page.TotalCount}
}
