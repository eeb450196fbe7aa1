package response

import "thikana_backend/internal/usecase"

type AdminSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type AdminStatsResponse struct {
	TotalRooms              int64  `json:"totalRooms"`
	AvailableRoomsPercent   string `json:"availableRoomsPercent"`
	UnavailableRoomsPercent string `json:"unavailableRoomsPercent"`
	TotalUsers              int    `json:"totalUsers"`
	TotalMembers            int    `json:"totalMembers"`
}

type AdminProfileResponse struct {
	Admin AdminSummary       `json:"admin"`
	Stats AdminStatsResponse `json:"stats"`
}

func FromAdminProfile(p usecase.AdminProfile) AdminProfileResponse {
	return AdminProfileResponse{
		Admin: AdminSummary{
			Name:  p.Admin.UserName,
			Email: p.Admin.UserEmail,
			Image: p.Admin.UserImage,
		},
		Stats: AdminStatsResponse{
			TotalRooms:              p.Stats.TotalRooms,
			AvailableRoomsPercent:   p.Stats.AvailableRoomsPercent,
			UnavailableRoomsPercent: p.Stats.UnavailableRoomsPercent,
			TotalUsers:              p.Stats.TotalUsers,
			TotalMembers:            p.Stats.TotalMembers,
		},
	}
}
