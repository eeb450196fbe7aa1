package entities

import "time"

// AgreementStatus represents the lifecycle of a tenancy agreement.
//
// Domain notes:
//   - An agreement is created as "pending" by the applicant.
//   - An admin decision (accept/reject) moves it to "checked"; the two are
//     mutually exclusive via a conditional update on the pending status.

type AgreementStatus string

const (
	AgreementStatusPending AgreementStatus = "pending"
	AgreementStatusChecked AgreementStatus = "checked"
)

// UserRole is the permission tier derived from the agreement. The agreement is
// the source of truth; the user directory carries a synced copy.

type UserRole string

const (
	UserRoleUser   UserRole = "user"
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

// Agreement links an applicant to an apartment unit and is persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: user_email
//
// We purposely use the applicant email as PK to guarantee at most one live
// agreement per applicant. The conditional put on creation is what enforces the
// one-pending-agreement rule under concurrent applications.

type Agreement struct {
	ID          string          `json:"id"`
	UserName    string          `json:"userName"`
	UserEmail   string          `json:"userEmail"`
	UserImage   string          `json:"userImage"`
	FloorNo     string          `json:"floorNo"`
	BlockName   string          `json:"blockName"`
	ApartmentNo string          `json:"apartmentNo"`
	Rent        float64         `json:"rent"`
	Status      AgreementStatus `json:"status"`
	Role        UserRole        `json:"role"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
