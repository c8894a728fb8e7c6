package server

import (
	"fmt"

	"huddle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GroupDTO is the API response model for group listings: id and name only.
type GroupDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CreateGroup handles POST /groups. The supplied admin_id is stored without
// verifying it references an existing user.
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req struct {
		GroupName string `json:"group_name"`
		AdminID   uint   `json:"admin_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondWithMessage(c, models.NewValidationError("Invalid request body"))
	}

	if _, err := s.groupService.CreateGroup(c.Context(), req.GroupName, req.AdminID); err != nil {
		return respondWithMessage(c, err)
	}

	return c.JSON(fiber.Map{"message": "Group created"})
}

// DeleteGroup handles DELETE /groups/:groupId. Only the group row is removed;
// memberships and messages are left behind.
func (s *Server) DeleteGroup(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "groupId")
	if err != nil {
		return nil
	}

	if err := s.groupService.DeleteGroup(c.Context(), groupID); err != nil {
		return respondWithMessage(c, err)
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Group %d deleted", groupID)})
}

// SearchGroups handles GET /groups/search. Despite the name there is no
// filtering: every group is returned as a snapshot at call time.
func (s *Server) SearchGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.ListGroups(c.Context())
	if err != nil {
		return respondWithMessage(c, err)
	}

	result := make([]GroupDTO, 0, len(groups))
	for _, group := range groups {
		result = append(result, GroupDTO{ID: group.ID, Name: group.Name})
	}

	return c.JSON(fiber.Map{"groups": result})
}

// AddMember handles POST /groups/:groupId/members.
func (s *Server) AddMember(c *fiber.Ctx) error {
	groupID, err := s.parseID(c, "groupId")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondWithMessage(c, models.NewValidationError("Invalid request body"))
	}

	if err := s.groupService.AddMember(c.Context(), groupID, req.UserID); err != nil {
		return respondWithMessage(c, err)
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Member added to group %d", groupID)})
}
