package stubserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// userRecord keeps the password hash next to the public user fields. The
// hash never appears in any response body.
type userRecord struct {
	user         domain.User
	passwordHash string
}

// store is the stub's process-local state. Everything vanishes on exit;
// that is the point of the fixture.
type store struct {
	mu         sync.Mutex
	users      map[string]*userRecord
	complaints map[string]*domain.Complaint
	reminders  map[string][]domain.Reminder
}

func newStore() *store {
	return &store{
		users:      make(map[string]*userRecord),
		complaints: make(map[string]*domain.Complaint),
		reminders:  make(map[string][]domain.Reminder),
	}
}

func (s *store) createUser(name, email, password, role string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.users {
		if strings.EqualFold(rec.user.Email, email) {
			return nil, domain.ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.users[user.ID] = &userRecord{user: user, passwordHash: string(hash)}
	return &user, nil
}

func (s *store) authenticate(email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.users {
		if strings.EqualFold(rec.user.Email, email) {
			if bcrypt.CompareHashAndPassword([]byte(rec.passwordHash), []byte(password)) != nil {
				return nil, domain.ErrInvalidCredentials
			}
			user := rec.user
			return &user, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *store) listUsers() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, 0, len(s.users))
	for _, rec := range s.users {
		out = append(out, rec.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *store) deleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *store) createComplaint(userID, title, description string, category domain.Category, urgency domain.Urgency) *domain.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &domain.Complaint{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Type:        category,
		Urgency:     urgency,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	s.complaints[c.ID] = c
	clone := *c
	return &clone
}

func (s *store) complaintsByOwner(ownerID string) []domain.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Complaint
	for _, c := range s.complaints {
		if c.UserID == ownerID {
			out = append(out, *c)
		}
	}
	s.sortByCreation(out)
	return out
}

func (s *store) allComplaints() []domain.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		clone := *c
		if rec, ok := s.users[c.UserID]; ok {
			clone.Submitter = &domain.Submitter{Name: rec.user.Name, Email: rec.user.Email}
		}
		out = append(out, clone)
	}
	s.sortByCreation(out)
	return out
}

// setStatus applies any status unconditionally; the stub reproduces the
// real backend's lack of a transition guard.
func (s *store) setStatus(id string, status domain.Status, resolutionNote, adminFeedback string) (*domain.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.complaints[id]
	if !ok {
		return nil, domain.ErrComplaintNotFound
	}
	c.Status = status
	if resolutionNote != "" {
		c.ResolutionNote = resolutionNote
	}
	if adminFeedback != "" {
		c.AdminFeedback = adminFeedback
	}
	clone := *c
	return &clone, nil
}

func (s *store) deleteComplaint(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.complaints[id]; !ok {
		return domain.ErrComplaintNotFound
	}
	delete(s.complaints, id)
	return nil
}

func (s *store) addReminder(userID, text string) domain.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Reminder{ID: uuid.New().String(), UserID: userID, Text: text}
	s.reminders[userID] = append(s.reminders[userID], r)
	return r
}

func (s *store) remindersByUser(userID string) []domain.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Reminder, len(s.reminders[userID]))
	copy(out, s.reminders[userID])
	return out
}

func (s *store) clearReminders(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.reminders, userID)
}

func (s *store) campusStats() domain.CampusStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := domain.CampusStats{TotalComplaints: len(s.complaints)}
	for _, c := range s.complaints {
		if c.Status == domain.StatusResolved {
			out.ResolvedComplaints++
		}
	}
	for _, rec := range s.users {
		if rec.user.Role == domain.RoleStudent {
			out.RegisteredStudents++
		}
	}
	return out
}

func (s *store) sortByCreation(list []domain.Complaint) {
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
}
