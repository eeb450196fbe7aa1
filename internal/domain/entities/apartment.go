package entities

// Apartment is a listed unit. Immutable from this service's point of view:
// the core only counts and filters apartments, it never mutates them.

type Apartment struct {
	ID          string  `json:"id"`
	FloorNo     string  `json:"floorNo"`
	BlockName   string  `json:"blockName"`
	ApartmentNo string  `json:"apartmentNo"`
	Rent        float64 `json:"rent"`
	Image       string  `json:"image,omitempty"`
}
