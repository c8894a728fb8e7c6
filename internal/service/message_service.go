package service

import (
	"context"

	"huddle/internal/models"
	"huddle/internal/repository"
)

// MessageService implements message and like operations.
type MessageService struct {
	messageRepo repository.MessageRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a MessageService backed by the given repositories.
func NewMessageService(messageRepo repository.MessageRepository, groupRepo repository.GroupRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
	}
}

// SendMessage posts a message to a group. The group and user must exist;
// empty content is permitted.
func (s *MessageService) SendMessage(ctx context.Context, groupID, userID uint, content string) (*models.Message, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	message := &models.Message{
		GroupID: groupID,
		UserID:  userID,
		Content: content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// LikeMessage records a like. Checks run in order: group, message, user,
// then duplicate pair. The message is not verified to belong to the group,
// so a message from another group can be liked through any existing group;
// tightening that policy is a one-line check here.
func (s *MessageService) LikeMessage(ctx context.Context, groupID, messageID, userID uint) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	if _, err := s.messageRepo.GetByID(ctx, messageID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	exists, err := s.messageRepo.LikeExists(ctx, messageID, userID)
	if err != nil {
		return err
	}
	if exists {
		return models.NewConflictError("User already liked the message")
	}

	return s.messageRepo.AddLike(ctx, &models.Like{
		MessageID: messageID,
		UserID:    userID,
	})
}
