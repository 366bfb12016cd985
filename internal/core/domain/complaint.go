package domain

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a complaint.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Known reports whether s is one of the three recognised statuses.
// The backend enforces no schema here, so unknown values can and do occur;
// callers that aggregate must tolerate them.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Urgency is the three-level priority tag on a complaint. It only drives
// sort ordering and display flags, never routing.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Weight returns the sort weight of an urgency. Unknown or missing values
// weigh zero and therefore sort last.
func (u Urgency) Weight() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}
	return 0
}

// Category is the complaint type chosen at submission.
type Category string

const (
	CategoryAcademic       Category = "Academic"
	CategoryInfrastructure Category = "Infrastructure"
	CategoryHostel         Category = "Hostel"
	CategoryOther          Category = "Other"
)

var (
	// ErrNotFound is the generic stale-reference failure: the server no
	// longer knows the id the client acted on.
	ErrNotFound           = errors.New("not found")
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrUnknownStatus      = errors.New("unknown complaint status")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginRequired      = errors.New("login required")
)

// Submitter is the name/email join the backend attaches to complaints on
// the admin listing.
type Submitter struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Complaint is a student-submitted grievance ticket. UserID, Type and
// Urgency are fixed at creation; only Status and the admin note fields are
// mutated afterwards, and only by an admin.
type Complaint struct {
	ID             string     `json:"_id"`
	UserID         string     `json:"userId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Type           Category   `json:"type"`
	Urgency        Urgency    `json:"urgency"`
	Status         Status     `json:"status"`
	ResolutionNote string     `json:"resolutionNote,omitempty"`
	AdminFeedback  string     `json:"adminFeedback,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	Submitter      *Submitter `json:"user,omitempty"`
}
