package dashboard

type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`

	LastVisit   string  `json:"last_visit"`
	TotalVisits int     `json:"total_visits"`
	TotalSpent  float64 `json:"total_spent"`

	Notes   string   `json:"notes"`
	History []string `json:"history"`
}
