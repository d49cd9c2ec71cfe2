package services

import (
	"context"
	"fmt"
	"time"

	"github.com/meharsulaiman/threads-backend/core"
	"github.com/meharsulaiman/threads-backend/pkg/crypto"
)

// UserService serves profiles and handles account mutation and the follow
// toggle.
type UserService struct {
	db     core.UserStore
	hasher crypto.PasswordHandler
}

func NewUserService(db core.UserStore, hasher crypto.PasswordHandler) *UserService {
	return &UserService{db: db, hasher: hasher}
}

// GetProfile returns the user with the given username, follow edges
// loaded. The password hash never leaves the store layer's record.
func (s *UserService) GetProfile(ctx context.Context, username string) (*core.User, error) {
	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.loadEdges(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID returns the user with the given id, follow edges loaded.
func (s *UserService) GetByID(ctx context.Context, id string) (*core.User, error) {
	user, err := s.db.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.loadEdges(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateInput carries the optional account fields; empty fields are left
// unchanged.
type UpdateInput struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ProfilePic string `json:"profilePic"`
	Bio        string `json:"bio"`
}

// Update applies a partial update to the account identified by targetID.
// Only the account owner may; a password change is re-hashed.
func (s *UserService) Update(ctx context.Context, principal *core.Principal, targetID string, input UpdateInput) (*core.User, error) {
	if !core.CanModifyAccount(principal, targetID) {
		return nil, core.ErrForbidden
	}

	user, err := s.db.GetUserByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	if input.Password != "" {
		hashed, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.ProfilePic != "" {
		user.ProfilePic = input.ProfilePic
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	user.UpdatedAt = time.Now()

	if err := s.db.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.loadEdges(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleFollow flips the follow edge principal->targetID and reports
// whether the principal follows the target after the call. The store
// applies both directions of the edge atomically, so a one-sided edge
// cannot be observed.
func (s *UserService) ToggleFollow(ctx context.Context, principal *core.Principal, targetID string) (bool, error) {
	if err := core.CanFollow(principal, targetID); err != nil {
		return false, err
	}

	if _, err := s.db.GetUserByID(ctx, targetID); err != nil {
		return false, err
	}

	following, err := s.db.ToggleFollow(ctx, principal.ID, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle follow: %w", err)
	}
	return following, nil
}

func (s *UserService) loadEdges(ctx context.Context, user *core.User) error {
	followers, err := s.db.Followers(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load followers: %w", err)
	}
	following, err := s.db.Following(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load following: %w", err)
	}
	user.Followers = followers
	user.Following = following
	return nil
}
