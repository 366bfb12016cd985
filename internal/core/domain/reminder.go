package domain

// Reminder is a persisted note tied to a user, managed through the
// assistant. Existence alone is its state.
type Reminder struct {
	ID     string `json:"_id"`
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// CampusStats are the homepage-level aggregate counters served by the
// backend, independent of any one user's complaint set.
type CampusStats struct {
	TotalComplaints    int `json:"totalComplaints"`
	ResolvedComplaints int `json:"resolvedComplaints"`
	RegisteredStudents int `json:"registeredStudents"`
}
