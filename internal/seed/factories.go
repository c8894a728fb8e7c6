// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"

	"huddle/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, seed int64) *Factory {
	gofakeit.Seed(seed)
	return &Factory{db: db, rnd: rand.New(rand.NewSource(seed))}
}

// CreateUser persists a user with a generated username and password.
func (f *Factory) CreateUser() (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username(),
		Password: gofakeit.Password(true, true, true, false, false, 10),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// CreateGroup persists a group owned by the given admin.
func (f *Factory) CreateGroup(admin *models.User) (*models.Group, error) {
	group := &models.Group{
		Name:    gofakeit.NounCollectiveThing() + " " + gofakeit.Adjective(),
		AdminID: admin.ID,
	}
	if err := f.db.Create(group).Error; err != nil {
		return nil, fmt.Errorf("seed group: %w", err)
	}
	return group, nil
}

// AddMember persists a membership row for the pair.
func (f *Factory) AddMember(group *models.Group, user *models.User) error {
	member := &models.GroupMember{GroupID: group.ID, UserID: user.ID}
	if err := f.db.Create(member).Error; err != nil {
		return fmt.Errorf("seed membership: %w", err)
	}
	return nil
}

// CreateMessage persists a short generated message from the user in the group.
func (f *Factory) CreateMessage(group *models.Group, user *models.User) (*models.Message, error) {
	message := &models.Message{
		GroupID: group.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(4 + f.rnd.Intn(8)),
	}
	if err := f.db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("seed message: %w", err)
	}
	return message, nil
}

// LikeMessage persists a like for the pair.
func (f *Factory) LikeMessage(message *models.Message, user *models.User) error {
	like := &models.Like{MessageID: message.ID, UserID: user.ID}
	if err := f.db.Create(like).Error; err != nil {
		return fmt.Errorf("seed like: %w", err)
	}
	return nil
}
