package dashboard

type Preferences struct {
	AvgPrice      float64 `json:"avg_price"`
	ClientsPerDay int     `json:"clients_per_day"`
	DaysPerWeek   int     `json:"days_per_week"`
}

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	City      string `json:"city"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`

	Level       string  `json:"level"`
	XP          int     `json:"xp"`
	NextLevelXP int     `json:"next_level_xp"`
	Rating      float64 `json:"rating"`

	Preferences *Preferences `json:"preferences,omitempty"`
}
