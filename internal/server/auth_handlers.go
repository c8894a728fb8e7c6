package server

import (
	"errors"

	"huddle/internal/models"
	"huddle/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /login. It checks the (username, password) pair against
// stored users. Both outcomes answer 200; only the message body differs.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondWithMessage(c, models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.Authenticate(c.Context(), req.Username, req.Password); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeInvalidCredentials {
			observability.LoginAttempts.WithLabelValues("failure").Inc()
		}
		return respondWithMessage(c, err)
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	return c.JSON(fiber.Map{"message": "Login successful"})
}

// Logout handles POST /logout. There is no session state to invalidate, so
// it always succeeds.
func (s *Server) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logout Successful"})
}
