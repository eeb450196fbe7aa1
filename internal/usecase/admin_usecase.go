package usecase

import (
	"context"
	"errors"
	"fmt"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"
)

var ErrAdminNotFound = errors.New("admin not found")

// AdminStats is the dashboard aggregate.
//
// unavailableRooms counts every agreement regardless of status or role
// (pending and rejected included), and availableRooms is the unguarded
// difference, so it can go negative when agreements outnumber apartments.
// Both quirks mirror the behavior the dashboard was built against.
type AdminStats struct {
	TotalRooms              int64  `json:"totalRooms"`
	AvailableRoomsPercent   string `json:"availableRoomsPercent"`
	UnavailableRoomsPercent string `json:"unavailableRoomsPercent"`
	TotalUsers              int    `json:"totalUsers"`
	TotalMembers            int    `json:"totalMembers"`
}

type AdminProfile struct {
	Admin entities.Agreement
	Stats AdminStats
}

// IAdminUseCase composes agreements and apartments into the admin dashboard.

type IAdminUseCase interface {
	Profile(ctx context.Context) (AdminProfile, error)
}

type AdminUseCase struct {
	agreements interfaces.IAgreementRepository
	apartments interfaces.IApartmentRepository
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(agreements interfaces.IAgreementRepository, apartments interfaces.IApartmentRepository) *AdminUseCase {
	return &AdminUseCase{agreements: agreements, apartments: apartments}
}

func (u *AdminUseCase) Profile(ctx context.Context) (AdminProfile, error) {
	agreements, err := u.agreements.List(ctx)
	if err != nil {
		return AdminProfile{}, err
	}

	var admin entities.Agreement
	for _, a := range agreements {
		if a.Role == entities.UserRoleAdmin {
			admin = a
			break
		}
	}
	if admin.UserEmail == "" {
		return AdminProfile{}, ErrAdminNotFound
	}

	totalRooms, err := u.apartments.Count(ctx)
	if err != nil {
		return AdminProfile{}, err
	}

	unavailableRooms := int64(len(agreements))
	availableRooms := totalRooms - unavailableRooms

	availablePercent := "0"
	unavailablePercent := "0"
	if totalRooms > 0 {
		availablePercent = fmt.Sprintf("%.1f", float64(availableRooms)/float64(totalRooms)*100)
		unavailablePercent = fmt.Sprintf("%.1f", float64(unavailableRooms)/float64(totalRooms)*100)
	}

	totalUsers := 0
	totalMembers := 0
	for _, a := range agreements {
		switch a.Role {
		case entities.UserRoleUser:
			totalUsers++
		case entities.UserRoleMember:
			totalMembers++
		}
	}

	return AdminProfile{
		Admin: admin,
		Stats: AdminStats{
			TotalRooms:              totalRooms,
			AvailableRoomsPercent:   availablePercent,
			UnavailableRoomsPercent: unavailablePercent,
			TotalUsers:              totalUsers,
			TotalMembers:            totalMembers,
		},
	}, nil
}
