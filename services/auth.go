package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meharsulaiman/threads-backend/core"
	"github.com/meharsulaiman/threads-backend/pkg/crypto"
	"github.com/meharsulaiman/threads-backend/pkg/token"
)

// AuthService registers users, authenticates credentials, and resolves
// session tokens into principals.
type AuthService struct {
	db     core.UserStore
	hasher crypto.PasswordHandler
	codec  *token.Codec

	// Verified instead of a real hash when the username is unknown, so
	// login latency does not reveal whether an account exists.
	dummyHash string
}

func NewAuthService(db core.UserStore, hasher crypto.PasswordHandler, codec *token.Codec) *AuthService {
	dummyHash, _ := hasher.Hash("threads-timing-guard")
	return &AuthService{
		db:        db,
		hasher:    hasher,
		codec:     codec,
		dummyHash: dummyHash,
	}
}

// SignUpInput contains the data needed to register a new user.
type SignUpInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult contains the authenticated user and their session token.
// The token travels to the client as a cookie, never in the body.
type AuthResult struct {
	User  *core.User
	Token string
}

// SignUp registers a new user and issues their first session token.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	if input.Name == "" || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, core.ErrMissingFields
	}

	// Step 1: Reject duplicate username or email
	if _, err := s.db.GetUserByUsername(ctx, input.Username); err == nil {
		return nil, core.ErrUserExists
	} else if !errors.Is(err, core.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if _, err := s.db.GetUserByEmail(ctx, input.Email); err == nil {
		return nil, core.ErrUserExists
	} else if !errors.Is(err, core.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	// Step 2: Hash the password
	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the user
	id, err := crypto.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	now := time.Now()
	user := &core.User{
		ID:           id,
		Username:     input.Username,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Step 4: Issue a session token for the new user
	tok, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{User: user, Token: tok}, nil
}

// LoginInput contains the credentials for authentication.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user with username and password. Unknown username
// and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, core.ErrMissingFields
	}

	user, err := s.db.GetUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			s.hasher.Verify(input.Password, s.dummyHash)
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, core.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{User: user, Token: tok}, nil
}

// ResolvePrincipal verifies a raw session token and resolves its claim
// against the store. A verified claim whose user record no longer exists
// fails with core.ErrUnauthenticated: handlers never receive a dangling
// principal.
func (s *AuthService) ResolvePrincipal(ctx context.Context, rawToken string) (*core.Principal, error) {
	userID, err := s.codec.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}

	return &core.Principal{ID: user.ID, Username: user.Username}, nil
}

// TokenTTL returns the validity window of issued tokens, which is also
// the session cookie lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.codec.TTL()
}
