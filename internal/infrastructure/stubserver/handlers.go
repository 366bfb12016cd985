package stubserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and password are required")
	}
	if req.Role == "" {
		req.Role = domain.RoleStudent
	}

	user, err := s.store.createUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := s.store.authenticate(req.Email, req.Password)
	if err != nil {
		loginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	loginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, map[string]any{"user": domain.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}})
}

type createComplaintRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Urgency     string `json:"urgency"`
}

func (s *Server) handleCreateComplaint(c echo.Context) error {
	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserID == "" || req.Title == "" || req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId, title and description are required")
	}

	created := s.store.createComplaint(
		req.UserID,
		req.Title,
		req.Description,
		domain.Category(req.Type),
		domain.Urgency(req.Urgency),
	)
	complaintsCreatedTotal.WithLabelValues(req.Urgency).Inc()
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListMyComplaints(c echo.Context) error {
	list := s.store.complaintsByOwner(c.Param("userId"))
	if list == nil {
		list = []domain.Complaint{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleListAllComplaints(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.allComplaints())
}

type updateStatusRequest struct {
	Status         string `json:"status"`
	ResolutionNote string `json:"resolutionNote"`
	AdminFeedback  string `json:"adminFeedback"`
}

func (s *Server) handleUpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	updated, err := s.store.setStatus(c.Param("id"), domain.Status(req.Status), req.ResolutionNote, req.AdminFeedback)
	if err != nil {
		return err
	}
	statusChangesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteComplaint(c echo.Context) error {
	if err := s.store.deleteComplaint(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageEnvelope{Message: "Complaint deleted"})
}

func (s *Server) handleListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listUsers())
}

func (s *Server) handleDeleteUser(c echo.Context) error {
	if err := s.store.deleteUser(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageEnvelope{Message: "User removed"})
}

func (s *Server) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.campusStats())
}

type createReminderRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

func (s *Server) handleCreateReminder(c echo.Context) error {
	var req createReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserID == "" || req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId and text are required")
	}
	return c.JSON(http.StatusCreated, s.store.addReminder(req.UserID, req.Text))
}

func (s *Server) handleListReminders(c echo.Context) error {
	list := s.store.remindersByUser(c.Param("userId"))
	if list == nil {
		list = []domain.Reminder{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleClearReminders(c echo.Context) error {
	s.store.clearReminders(c.Param("userId"))
	return c.JSON(http.StatusOK, messageEnvelope{Message: "Reminders cleared"})
}
