package request

// AnnouncementRequest is the payload for posting a community notice.
type AnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
