package server

import (
	"fmt"

	"huddle/internal/models"
	"huddle/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /groups/:groupId/messages.
func (s *Server) SendMessage(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "groupId")
	if err != nil {
		return nil
	}

	var req struct {
		UserID  uint   `json:"user_id"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondWithMessage(c, models.NewValidationError("Invalid request body"))
	}

	if _, err := s.messageService.SendMessage(c.Context(), groupID, req.UserID, req.Content); err != nil {
		return respondWithMessage(c, err)
	}

	observability.MessagesSent.Inc()
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Message sent in group %d", groupID)})
}

// LikeMessage handles POST /groups/:groupId/messages/:messageId/likes.
func (s *Server) LikeMessage(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "groupId")
	if err != nil {
		return nil
	}
	messageID, err := s.parseID(c, "messageId")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondWithMessage(c, models.NewValidationError("Invalid request body"))
	}

	if err := s.messageService.LikeMessage(c.Context(), groupID, messageID, req.UserID); err != nil {
		return respondWithMessage(c, err)
	}

	observability.LikesRecorded.Inc()
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Message %d liked in group %d", messageID, groupID)})
}
