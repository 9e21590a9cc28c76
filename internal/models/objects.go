package models

// ObjectFields is the backend response for GET /api/object
type ObjectFields struct {
	Admin   string `json:"admin"`
	ID      string `json:"id"`
	Balance string `json:"balance"`
}
