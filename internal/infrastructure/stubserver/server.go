// Package stubserver is an in-memory fake of the remote helpdesk REST API.
// It exists so the client can be exercised end-to-end in tests and local
// demos without the real backend; it holds no durable state and is not a
// backend implementation.
package stubserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// Server wires the in-memory store behind the same routes and envelopes the
// real API exposes.
type Server struct {
	echo   *echo.Echo
	store  *store
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Server {
	s := &Server{
		echo:   echo.New(),
		store:  newStore(),
		logger: logger,
	}

	e := s.echo
	e.HideBanner = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("helpdesk_stub"))
	e.GET("/metrics", echoprometheus.NewHandler())

	e.POST("/api/auth/register", s.handleRegister)
	e.POST("/api/auth/login", s.handleLogin)

	e.POST("/api/complaints", s.handleCreateComplaint)
	e.GET("/api/complaints/my/:userId", s.handleListMyComplaints)
	e.GET("/api/complaints/all", s.handleListAllComplaints)
	e.PUT("/api/complaints/:id/status", s.handleUpdateStatus)
	e.DELETE("/api/complaints/:id", s.handleDeleteComplaint)

	e.GET("/api/users/all", s.handleListUsers)
	e.DELETE("/api/users/:id", s.handleDeleteUser)

	e.GET("/api/stats", s.handleStats)

	e.POST("/api/reminders", s.handleCreateReminder)
	e.GET("/api/reminders/:userId", s.handleListReminders)
	e.DELETE("/api/reminders/clear/:userId", s.handleClearReminders)

	return s
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving on addr until the process exits.
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("stub helpdesk API listening")
	return s.echo.Start(addr)
}

// messageEnvelope mirrors the real backend's error body, which the client
// reads from the "message" key.
type messageEnvelope struct {
	Message string `json:"message"`
}

// errorHandler maps domain sentinels to deterministic status codes and
// keeps unexpected errors out of response bodies.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := http.StatusInternalServerError, "internal server error"
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code, msg = he.Code, fmt.Sprintf("%v", he.Message)
	case errors.Is(err, domain.ErrUserExists):
		code, msg = http.StatusConflict, "Email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrComplaintNotFound):
		code, msg = http.StatusNotFound, "Complaint not found"
	case errors.Is(err, domain.ErrUserNotFound):
		code, msg = http.StatusNotFound, "User not found"
	default:
		s.logger.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled stub error")
	}

	_ = c.JSON(code, messageEnvelope{Message: msg})
}
