package request

import "strings"

// AgreementApplyRequest is the application payload submitted by a resident.
type AgreementApplyRequest struct {
	UserName    string  `json:"userName" binding:"required"`
	UserEmail   string  `json:"userEmail" binding:"required,email"`
	UserImage   string  `json:"userImage"`
	FloorNo     string  `json:"floorNo"`
	BlockName   string  `json:"blockName"`
	ApartmentNo string  `json:"apartmentNo" binding:"required"`
	Rent        float64 `json:"rent"`
}

func (r AgreementApplyRequest) ResolveEmail() string {
	return strings.TrimSpace(r.UserEmail)
}
