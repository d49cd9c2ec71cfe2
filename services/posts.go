package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/meharsulaiman/threads-backend/core"
	"github.com/meharsulaiman/threads-backend/pkg/crypto"
)

// PostService handles posts, the like toggle, replies, and the feed.
type PostService struct {
	users core.UserStore
	posts core.PostStore
}

func NewPostService(users core.UserStore, posts core.PostStore) *PostService {
	return &PostService{users: users, posts: posts}
}

// CreateInput contains the data needed to create a post.
type CreateInput struct {
	PostedBy string `json:"postedBy"`
	Text     string `json:"text"`
	Img      string `json:"img"`
}

// Create stores a new post. PostedBy must name the acting principal.
func (s *PostService) Create(ctx context.Context, principal *core.Principal, input CreateInput) (*core.Post, error) {
	if input.PostedBy == "" || input.Text == "" {
		return nil, core.ErrMissingFields
	}

	owner, err := s.users.GetUserByID(ctx, input.PostedBy)
	if err != nil {
		return nil, err
	}
	if principal == nil || principal.ID != owner.ID {
		return nil, core.ErrForbidden
	}

	if utf8.RuneCountInString(input.Text) > core.MaxPostLength {
		return nil, core.ErrPostTooLong
	}

	id, err := crypto.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate post id: %w", err)
	}

	post := &core.Post{
		ID:        id,
		PostedBy:  input.PostedBy,
		Text:      input.Text,
		Img:       input.Img,
		CreatedAt: time.Now(),
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// Get returns the post with the given id.
func (s *PostService) Get(ctx context.Context, id string) (*core.Post, error) {
	return s.posts.GetPostByID(ctx, id)
}

// Delete removes a post. Only the owner may.
func (s *PostService) Delete(ctx context.Context, principal *core.Principal, id string) error {
	post, err := s.posts.GetPostByID(ctx, id)
	if err != nil {
		return err
	}
	if !core.CanDeletePost(principal, post) {
		return core.ErrForbidden
	}
	if err := s.posts.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// ToggleLike flips the like edge principal->post and reports whether the
// principal likes the post after the call.
func (s *PostService) ToggleLike(ctx context.Context, principal *core.Principal, postID string) (bool, error) {
	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		return false, err
	}

	liked, err := s.posts.ToggleLike(ctx, postID, principal.ID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}
	return liked, nil
}

// Reply appends a comment to a post, snapshotting the author's username
// and profile picture at reply time.
func (s *PostService) Reply(ctx context.Context, principal *core.Principal, postID, text string) (*core.Post, error) {
	if text == "" {
		return nil, core.ErrMissingFields
	}

	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	author, err := s.users.GetUserByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	id, err := crypto.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply id: %w", err)
	}

	reply := &core.Reply{
		ID:         id,
		UserID:     author.ID,
		Username:   author.Username,
		ProfilePic: author.ProfilePic,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	if err := s.posts.AddReply(ctx, postID, reply); err != nil {
		return nil, fmt.Errorf("failed to add reply: %w", err)
	}

	return s.posts.GetPostByID(ctx, postID)
}

// Feed returns posts authored by the users the principal follows, newest
// first. An empty follow list yields an empty feed.
func (s *PostService) Feed(ctx context.Context, principal *core.Principal) ([]*core.Post, error) {
	following, err := s.users.Following(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load following: %w", err)
	}

	posts, err := s.posts.FeedPosts(ctx, following)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	return posts, nil
}
