package core

import "context"

// Ports for the external persistence layer.

// UserStore persists user records and the follow graph.
type UserStore interface {
	CreateUser(ctx context.Context, u *User) error

	// Query methods. Each returns ErrUserNotFound when the record is absent.
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	UpdateUser(ctx context.Context, u *User) error

	// ToggleFollow atomically flips the follow edge actor->target and
	// reports whether the edge exists after the call. Both directions of
	// the relation observe the change together or not at all.
	ToggleFollow(ctx context.Context, actorID, targetID string) (following bool, err error)

	Following(ctx context.Context, userID string) ([]string, error)
	Followers(ctx context.Context, userID string) ([]string, error)
}

// PostStore persists posts, likes, and replies.
type PostStore interface {
	CreatePost(ctx context.Context, p *Post) error
	GetPostByID(ctx context.Context, id string) (*Post, error)
	DeletePost(ctx context.Context, id string) error

	// ToggleLike atomically flips the like edge user->post and reports
	// whether the post is liked by the user after the call.
	ToggleLike(ctx context.Context, postID, userID string) (liked bool, err error)

	AddReply(ctx context.Context, postID string, r *Reply) error

	// FeedPosts returns posts authored by the given users, newest first.
	FeedPosts(ctx context.Context, authorIDs []string) ([]*Post, error)
}

type Store interface {
	UserStore
	PostStore
}
