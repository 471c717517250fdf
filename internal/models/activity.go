package models

// Activity is a unit of work inside a project
type Activity struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      Status `json:"status"`
}

// GetID returns the activity's identifier
func (a *Activity) GetID() int64 {
	return a.ID
}
