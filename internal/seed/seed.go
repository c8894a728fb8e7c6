package seed

import (
	"fmt"
	"log/slog"

	"huddle/internal/middleware"
	"huddle/internal/models"

	"gorm.io/gorm"
)

// Options controls the size of the generated dataset.
type Options struct {
	Users            int
	Groups           int
	MembersPerGroup  int
	MessagesPerGroup int
	LikesPerMessage  int
	Seed             int64
}

// DefaultOptions returns a small dataset suitable for local development.
func DefaultOptions() Options {
	return Options{
		Users:            12,
		Groups:           4,
		MembersPerGroup:  5,
		MessagesPerGroup: 8,
		LikesPerMessage:  3,
		Seed:             1,
	}
}

// Run populates the database with demo users, groups, memberships, messages,
// and likes. Membership and like pairs are kept unique so the composite
// indexes are never violated.
func Run(db *gorm.DB, opts Options) error {
	if opts.Users < 1 {
		return fmt.Errorf("seed: at least one user is required, got %d", opts.Users)
	}
	if opts.Groups < 0 {
		return fmt.Errorf("seed: group count must not be negative, got %d", opts.Groups)
	}

	f := NewFactory(db, opts.Seed)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	for g := 0; g < opts.Groups; g++ {
		admin := users[f.rnd.Intn(len(users))]
		group, err := f.CreateGroup(admin)
		if err != nil {
			return err
		}

		members := pickDistinct(f.rnd.Perm(len(users)), opts.MembersPerGroup)
		for _, idx := range members {
			if err := f.AddMember(group, users[idx]); err != nil {
				return err
			}
		}

		for m := 0; m < opts.MessagesPerGroup; m++ {
			author := admin
			if len(members) > 0 {
				author = users[members[f.rnd.Intn(len(members))]]
			}
			message, err := f.CreateMessage(group, author)
			if err != nil {
				return err
			}

			likers := pickDistinct(f.rnd.Perm(len(users)), opts.LikesPerMessage)
			for _, idx := range likers {
				if err := f.LikeMessage(message, users[idx]); err != nil {
					return err
				}
			}
		}
	}

	middleware.Logger.Info("Seed completed",
		slog.Int("users", opts.Users),
		slog.Int("groups", opts.Groups),
	)
	return nil
}

// pickDistinct takes the first n entries of a permutation, clamped to its length.
func pickDistinct(perm []int, n int) []int {
	if n > len(perm) {
		n = len(perm)
	}
	return perm[:n]
}
