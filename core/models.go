package core

import "time"

// MaxPostLength is the maximum number of characters allowed in a post body.
const MaxPostLength = 500

// User represents a member of the network.
//
// This is the persisted record - identity, profile, and credential.
// PasswordHash must never be serialized into a response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Bio          string    `json:"bio,omitempty"`
	ProfilePic   string    `json:"profilePic,omitempty"`
	Followers    []string  `json:"followers"`
	Following    []string  `json:"following"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Principal is the authenticated actor for one request.
//
// It is constructed by the auth gate from a verified token claim and an
// existing user record, lives in the request context, and is discarded at
// response end. It never carries credential material and is never persisted.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Post represents a single post. Likes hold the IDs of users who currently
// like the post; both Likes and Replies are loaded alongside the post.
type Post struct {
	ID        string    `json:"id"`
	PostedBy  string    `json:"postedBy"`
	Text      string    `json:"text"`
	Img       string    `json:"img,omitempty"`
	Likes     []string  `json:"likes"`
	Replies   []Reply   `json:"replies"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reply is a comment on a post. Username and ProfilePic are snapshots of
// the author at reply time.
type Reply struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	ProfilePic string    `json:"userProfilePic,omitempty"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}
