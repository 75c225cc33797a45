package domain

// Course is a row in the backend's Course table. The backend owns the
// schema; timestamps pass through as the ISO strings it stores.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Term        string `json:"term"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Visibility  string `json:"visibility"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
