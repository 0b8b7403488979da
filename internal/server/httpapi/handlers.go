package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/campushub/campushub/internal/common"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/campushub/campushub/internal/server/validation"
	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createEventRequest struct {
	Title    string    `json:"title"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

type eventResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.accounts.Register(c.Request.Context(), req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		var violations validation.Violations
		switch {
		case errors.As(err, &violations):
			c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		case errors.Is(err, common.ErrDuplicateAccount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "account already exists"})
		case errors.Is(err, common.ErrServiceUnavailable):
			s.logger.Error(c.Request.Context(), "signup store failure", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		default:
			s.logger.Error(c.Request.Context(), "signup failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	s.logger.Info(c.Request.Context(), "account registered", "accountID", result.Account.ID, "role", string(result.Account.Role))
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   result.Token,
		"message": "account created",
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		case errors.Is(err, common.ErrServiceUnavailable):
			s.logger.Error(c.Request.Context(), "login store failure", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		default:
			s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token})
}

func (s *Server) handleListEvents(c *gin.Context) {
	list, err := s.events.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "event listing failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}

	out := make([]eventResponse, 0, len(list))
	for _, event := range list {
		out = append(out, eventResponse{
			ID:       event.ID,
			Title:    event.Title,
			Location: event.Location,
			StartsAt: event.StartsAt,
			EndsAt:   event.EndsAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"events": out})
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event, err := s.events.Create(c.Request.Context(), req.Title, req.Location, req.StartsAt, req.EndsAt, c.GetString(ctxAccountID))
	if err != nil {
		var violations validation.Violations
		switch {
		case errors.As(err, &violations):
			c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		default:
			s.logger.Error(c.Request.Context(), "event creation failed", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": eventResponse{
		ID:       event.ID,
		Title:    event.Title,
		Location: event.Location,
		StartsAt: event.StartsAt,
		EndsAt:   event.EndsAt,
	}})
}
