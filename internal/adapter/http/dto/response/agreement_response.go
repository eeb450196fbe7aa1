package response

import (
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase"
)

type AgreementResponse struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	UserImage   string    `json:"userImage,omitempty"`
	FloorNo     string    `json:"floorNo"`
	BlockName   string    `json:"blockName"`
	ApartmentNo string    `json:"apartmentNo"`
	Rent        float64   `json:"rent"`
	Status      string    `json:"status"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	return AgreementResponse{
		ID:          a.ID,
		UserName:    a.UserName,
		UserEmail:   a.UserEmail,
		UserImage:   a.UserImage,
		FloorNo:     a.FloorNo,
		BlockName:   a.BlockName,
		ApartmentNo: a.ApartmentNo,
		Rent:        a.Rent,
		Status:      string(a.Status),
		Role:        string(a.Role),
		CreatedAt:   a.CreatedAt,
	}
}

func FromAgreements(agreements []entities.Agreement) []AgreementResponse {
	out := make([]AgreementResponse, 0, len(agreements))
	for _, a := range agreements {
		out = append(out, FromAgreement(a))
	}
	return out
}

// AgreementAcceptedResponse reports the per-store modification counts of an
// acceptance. Both counts move together now that the writes are transactional,
// but the shape is kept so callers can still observe a no-op (0/0).
type AgreementAcceptedResponse struct {
	Message           string `json:"message"`
	AgreementModified int    `json:"agreementModified"`
	UserModified      int    `json:"userModified"`
}

func FromAcceptResult(res usecase.AcceptResult) AgreementAcceptedResponse {
	return AgreementAcceptedResponse{
		Message:           "Agreement accepted and role updated to member",
		AgreementModified: res.AgreementModified,
		UserModified:      res.DirectoryModified,
	}
}

type AgreementRejectedResponse struct {
	ModifiedCount int `json:"modifiedCount"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
