package server

import (
	"fmt"

	"huddle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /admin/users. The insert is unconditional: empty
// fields and duplicate usernames are accepted.
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondWithMessage(c, models.NewValidationError("Invalid request body"))
	}

	if _, err := s.userService.CreateUser(c.Context(), req.Username, req.Password); err != nil {
		return respondWithMessage(c, err)
	}

	return c.JSON(fiber.Map{"message": "User created"})
}

// EditUser handles PUT /admin/users/:userId. Both fields are overwritten;
// fields absent from the request are written as empty strings.
func (s *Server) EditUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondWithMessage(c, models.NewValidationError("Invalid request body"))
	}

	if _, err := s.userService.UpdateUser(c.Context(), userID, req.Username, req.Password); err != nil {
		return respondWithMessage(c, err)
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("User %d updated", userID)})
}
