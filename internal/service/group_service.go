package service

import (
	"context"

	"huddle/internal/models"
	"huddle/internal/repository"
)

// GroupService implements group and membership operations.
type GroupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// NewGroupService returns a GroupService backed by the given repositories.
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, userRepo: userRepo}
}

// CreateGroup inserts a group. AdminID is stored as supplied and is not
// verified against the users table.
func (s *GroupService) CreateGroup(ctx context.Context, name string, adminID uint) (*models.Group, error) {
	group := &models.Group{
		Name:    name,
		AdminID: adminID,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup removes the group row after confirming it exists. Memberships
// and messages referencing the group are not touched.
func (s *GroupService) DeleteGroup(ctx context.Context, id uint) error {
	if _, err := s.groupRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.groupRepo.Delete(ctx, id)
}

// ListGroups returns every group, unfiltered and unpaginated.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.groupRepo.List(ctx)
}

// AddMember adds a user to a group. The group and user must exist and the
// pair must not already be a membership.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID uint) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	exists, err := s.groupRepo.MemberExists(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if exists {
		return models.NewConflictError("Member already exists in the group")
	}

	return s.groupRepo.AddMember(ctx, &models.GroupMember{
		GroupID: groupID,
		UserID:  userID,
	})
}
