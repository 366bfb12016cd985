package domain

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	RoleStudent = "Student"
	RoleAdmin   = "Admin"
)

// User models a registered account as the backend returns it. The password
// hash never leaves the server.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the locally stored representation of the logged-in user. It is
// the only client-side persisted state.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// FirstName returns the leading token of the display name, used by the
// assistant when addressing the user.
func (i *Identity) FirstName() string {
	name, _, _ := strings.Cut(strings.TrimSpace(i.Name), " ")
	return name
}

type identityJSON struct {
	ID      string `json:"id,omitempty"`
	MongoID string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// UnmarshalJSON accepts identity blobs keyed by either "id" or "_id"; the
// backend emits Mongo-style "_id" while older session files used "id".
func (i *Identity) UnmarshalJSON(b []byte) error {
	var raw identityJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	i.ID = raw.ID
	if i.ID == "" {
		i.ID = raw.MongoID
	}
	i.Name = raw.Name
	i.Email = raw.Email
	i.Role = raw.Role
	return nil
}

// MarshalJSON writes both key spellings so any reader of the session blob
// finds the one it expects.
func (i Identity) MarshalJSON() ([]byte, error) {
	return json.Marshal(identityJSON{
		ID:      i.ID,
		MongoID: i.ID,
		Name:    i.Name,
		Email:   i.Email,
		Role:    i.Role,
	})
}
