package services

import (
	"context"
	"sort"
	"sync"

	"github.com/meharsulaiman/threads-backend/core"
)

type edge struct{ from, to string }

// FakeStore is a test-only in-memory implementation of core.Store. It
// stores records in maps and exposes error fields for behavior injection.
// Follow and like edges live in edge sets, mirroring the real store's
// edge tables; the single mutex makes every toggle atomic.
type FakeStore struct {
	mu      sync.RWMutex
	users   map[string]*core.User
	posts   map[string]*core.Post
	follows map[edge]struct{} // from: actor, to: target
	likes   map[edge]struct{} // from: user, to: post

	createErr error
	getErr    error
	updateErr error
	toggleErr error
}

var _ core.Store = (*FakeStore)(nil)

func NewFakeStore() *FakeStore {
	return &FakeStore{
		users:   make(map[string]*core.User),
		posts:   make(map[string]*core.Post),
		follows: make(map[edge]struct{}),
		likes:   make(map[edge]struct{}),
	}
}

func (f *FakeStore) CreateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.users[u.ID] = u
	return nil
}

func (f *FakeStore) GetUserByID(_ context.Context, id string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return u, nil
}

func (f *FakeStore) GetUserByUsername(_ context.Context, username string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStore) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStore) UpdateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[u.ID]; !ok {
		return core.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *FakeStore) ToggleFollow(_ context.Context, actorID, targetID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	e := edge{from: actorID, to: targetID}
	if _, ok := f.follows[e]; ok {
		delete(f.follows, e)
		return false, nil
	}
	f.follows[e] = struct{}{}
	return true, nil
}

func (f *FakeStore) Following(_ context.Context, userID string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	ids := []string{}
	for e := range f.follows {
		if e.from == userID {
			ids = append(ids, e.to)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *FakeStore) Followers(_ context.Context, userID string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	ids := []string{}
	for e := range f.follows {
		if e.to == userID {
			ids = append(ids, e.from)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *FakeStore) CreatePost(_ context.Context, p *core.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.posts[p.ID] = p
	return nil
}

func (f *FakeStore) GetPostByID(_ context.Context, id string) (*core.Post, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, core.ErrPostNotFound
	}
	p.Likes = f.likesOf(id)
	return p, nil
}

func (f *FakeStore) DeletePost(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.posts[id]; !ok {
		return core.ErrPostNotFound
	}
	delete(f.posts, id)
	for e := range f.likes {
		if e.to == id {
			delete(f.likes, e)
		}
	}
	return nil
}

func (f *FakeStore) ToggleLike(_ context.Context, postID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	e := edge{from: userID, to: postID}
	if _, ok := f.likes[e]; ok {
		delete(f.likes, e)
		return false, nil
	}
	f.likes[e] = struct{}{}
	return true, nil
}

func (f *FakeStore) AddReply(_ context.Context, postID string, r *core.Reply) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	p, ok := f.posts[postID]
	if !ok {
		return core.ErrPostNotFound
	}
	p.Replies = append(p.Replies, *r)
	return nil
}

func (f *FakeStore) FeedPosts(_ context.Context, authorIDs []string) ([]*core.Post, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	authors := make(map[string]bool, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = true
	}
	posts := []*core.Post{}
	for _, p := range f.posts {
		if authors[p.PostedBy] {
			p.Likes = f.likesOf(p.ID)
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// likesOf must be called with the mutex held.
func (f *FakeStore) likesOf(postID string) []string {
	ids := []string{}
	for e := range f.likes {
		if e.to == postID {
			ids = append(ids, e.from)
		}
	}
	sort.Strings(ids)
	return ids
}
