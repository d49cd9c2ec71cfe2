package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/meharsulaiman/threads-backend/core"
)

func (a *Adapter) CreatePost(ctx context.Context, post *core.Post) error {
	query := `INSERT INTO posts (id, posted_by, text, img, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := a.pool.Exec(ctx, query,
		post.ID, post.PostedBy, post.Text, post.Img, post.CreatedAt)
	if err != nil {
		return oops.Code("POST_CREATE_FAILED").With("posted_by", post.PostedBy).Wrap(err)
	}
	return nil
}

func (a *Adapter) GetPostByID(ctx context.Context, id string) (*core.Post, error) {
	query := `SELECT id, posted_by, text, img, created_at FROM posts WHERE id = $1`

	post := &core.Post{}
	err := a.pool.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.PostedBy, &post.Text, &post.Img, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrPostNotFound
		}
		return nil, oops.Code("POST_SCAN_FAILED").With("id", id).Wrap(err)
	}

	if err := a.loadEngagement(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (a *Adapter) DeletePost(ctx context.Context, id string) error {
	// Likes and replies go with the post via ON DELETE CASCADE.
	tag, err := a.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return oops.Code("POST_DELETE_FAILED").With("id", id).Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrPostNotFound
	}
	return nil
}

// ToggleLike flips the like edge in one transaction.
func (a *Adapter) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return false, oops.Code("LIKE_TOGGLE_FAILED").Wrap(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		postID, userID)
	if err != nil {
		return false, oops.Code("LIKE_TOGGLE_FAILED").With("post", postID).Wrap(err)
	}

	liked := tag.RowsAffected() > 0
	if !liked {
		if _, err := tx.Exec(ctx,
			`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
			postID, userID); err != nil {
			return false, oops.Code("LIKE_TOGGLE_FAILED").With("post", postID).Wrap(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, oops.Code("LIKE_TOGGLE_FAILED").Wrap(err)
	}
	return liked, nil
}

func (a *Adapter) AddReply(ctx context.Context, postID string, reply *core.Reply) error {
	query := `INSERT INTO replies (id, post_id, user_id, username, profile_pic, text, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := a.pool.Exec(ctx, query,
		reply.ID, postID, reply.UserID, reply.Username, reply.ProfilePic,
		reply.Text, reply.CreatedAt)
	if err != nil {
		return oops.Code("REPLY_CREATE_FAILED").With("post", postID).Wrap(err)
	}
	return nil
}

func (a *Adapter) FeedPosts(ctx context.Context, authorIDs []string) ([]*core.Post, error) {
	// An empty feed is an empty list, never null.
	posts := []*core.Post{}
	if len(authorIDs) == 0 {
		return posts, nil
	}

	query := `SELECT id, posted_by, text, img, created_at
	          FROM posts WHERE posted_by = ANY($1) ORDER BY created_at DESC`
	rows, err := a.pool.Query(ctx, query, authorIDs)
	if err != nil {
		return nil, oops.Code("FEED_QUERY_FAILED").Wrap(err)
	}
	defer rows.Close()

	for rows.Next() {
		post := &core.Post{}
		if err := rows.Scan(&post.ID, &post.PostedBy, &post.Text, &post.Img, &post.CreatedAt); err != nil {
			return nil, oops.Code("FEED_QUERY_FAILED").Wrap(err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("FEED_QUERY_FAILED").Wrap(err)
	}

	for _, post := range posts {
		if err := a.loadEngagement(ctx, post); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// loadEngagement fills a post's likes and replies.
func (a *Adapter) loadEngagement(ctx context.Context, post *core.Post) error {
	rows, err := a.pool.Query(ctx,
		`SELECT user_id FROM post_likes WHERE post_id = $1 ORDER BY created_at`, post.ID)
	if err != nil {
		return oops.Code("LIKES_QUERY_FAILED").With("post", post.ID).Wrap(err)
	}
	defer rows.Close()
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return oops.Code("LIKES_QUERY_FAILED").With("post", post.ID).Wrap(err)
		}
		post.Likes = append(post.Likes, userID)
	}
	if err := rows.Err(); err != nil {
		return oops.Code("LIKES_QUERY_FAILED").With("post", post.ID).Wrap(err)
	}

	replyRows, err := a.pool.Query(ctx,
		`SELECT id, user_id, username, profile_pic, text, created_at
		 FROM replies WHERE post_id = $1 ORDER BY created_at`, post.ID)
	if err != nil {
		return oops.Code("REPLIES_QUERY_FAILED").With("post", post.ID).Wrap(err)
	}
	defer replyRows.Close()
	for replyRows.Next() {
		var reply core.Reply
		if err := replyRows.Scan(&reply.ID, &reply.UserID, &reply.Username,
			&reply.ProfilePic, &reply.Text, &reply.CreatedAt); err != nil {
			return oops.Code("REPLIES_QUERY_FAILED").With("post", post.ID).Wrap(err)
		}
		post.Replies = append(post.Replies, reply)
	}
	if err := replyRows.Err(); err != nil {
		return oops.Code("REPLIES_QUERY_FAILED").With("post", post.ID).Wrap(err)
	}
	return nil
}
