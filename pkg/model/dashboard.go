package model

type CategoryAverage struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Color string  `json:"color"`
}

type RecentSession struct {
	SessionID       string   `json:"session_id"`
	Company         string   `json:"company"`
	Role            string   `json:"role"`
	Mode            string   `json:"mode"`
	Score           float64  `json:"score"`
	Date            string   `json:"date"`
	Recommendations []string `json:"recommendations"`
}

type DashboardStats struct {
	SessionsCompleted int               `json:"sessions_completed"`
	AverageScore      float64           `json:"average_score"`
	ImprovementAreas  int               `json:"improvement_areas"`
	TotalTime         string            `json:"total_time"`
	CategoryAverages  []CategoryAverage `json:"category_averages"`
	RecentSessions    []RecentSession   `json:"recent_sessions"`
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Score   float64 `json:"score"`
	Company string  `json:"company"`
	Role    string  `json:"role"`
}

type CategoryBreakdown struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Best     float64 `json:"best"`
	Worst    float64 `json:"worst"`
	Sessions int     `json:"sessions"`
	Trend    string  `json:"trend"`
}
