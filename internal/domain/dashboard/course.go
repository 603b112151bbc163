package dashboard

// Course → Module → Lesson, posse aninhada e ordenada. Progress é
// derivado: round(100 * lições concluídas / total) sobre o curso
// inteiro, recalculado a cada conclusão de lição.
type Course struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Progress int      `json:"progress"`
	Modules  []Module `json:"modules"`
}

type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DurationMin int    `json:"duration_min"`
	XPReward    int    `json:"xp_reward"`
	IsCompleted bool   `json:"is_completed"`
}
