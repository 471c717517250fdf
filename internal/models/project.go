package models

// Project is the top-level unit a user tracks progress for.
// Dates are free-form text (normally ISO 8601); no format is enforced.
type Project struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// GetID returns the project's identifier
func (p *Project) GetID() int64 {
	return p.ID
}
