package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/meharsulaiman/threads-backend/core"
)

const userColumns = `id, username, email, name, password_hash, bio, profile_pic, created_at, updated_at`

func (a *Adapter) CreateUser(ctx context.Context, user *core.User) error {
	query := `INSERT INTO users (` + userColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := a.pool.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.Name, user.PasswordHash,
		user.Bio, user.ProfilePic, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrUserExists
		}
		return oops.Code("USER_CREATE_FAILED").With("username", user.Username).Wrap(err)
	}
	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return a.scanUser(a.pool.QueryRow(ctx, query, id))
}

func (a *Adapter) GetUserByUsername(ctx context.Context, username string) (*core.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return a.scanUser(a.pool.QueryRow(ctx, query, username))
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return a.scanUser(a.pool.QueryRow(ctx, query, email))
}

func (a *Adapter) UpdateUser(ctx context.Context, user *core.User) error {
	query := `UPDATE users
	          SET username = $1, email = $2, name = $3, password_hash = $4,
	              bio = $5, profile_pic = $6, updated_at = $7
	          WHERE id = $8`
	tag, err := a.pool.Exec(ctx, query,
		user.Username, user.Email, user.Name, user.PasswordHash,
		user.Bio, user.ProfilePic, user.UpdatedAt, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrUserExists
		}
		return oops.Code("USER_UPDATE_FAILED").With("id", user.ID).Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}

// ToggleFollow flips the follow edge in one transaction. The insert and
// the compensating delete can never be observed half applied.
func (a *Adapter) ToggleFollow(ctx context.Context, actorID, targetID string) (bool, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return false, oops.Code("FOLLOW_TOGGLE_FAILED").Wrap(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`INSERT INTO follows (actor_id, target_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		actorID, targetID)
	if err != nil {
		return false, oops.Code("FOLLOW_TOGGLE_FAILED").With("actor", actorID).Wrap(err)
	}

	following := tag.RowsAffected() > 0
	if !following {
		if _, err := tx.Exec(ctx,
			`DELETE FROM follows WHERE actor_id = $1 AND target_id = $2`,
			actorID, targetID); err != nil {
			return false, oops.Code("FOLLOW_TOGGLE_FAILED").With("actor", actorID).Wrap(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, oops.Code("FOLLOW_TOGGLE_FAILED").Wrap(err)
	}
	return following, nil
}

func (a *Adapter) Followers(ctx context.Context, userID string) ([]string, error) {
	return a.edgeList(ctx,
		`SELECT actor_id FROM follows WHERE target_id = $1 ORDER BY created_at`, userID)
}

func (a *Adapter) Following(ctx context.Context, userID string) ([]string, error) {
	return a.edgeList(ctx,
		`SELECT target_id FROM follows WHERE actor_id = $1 ORDER BY created_at`, userID)
}

func (a *Adapter) edgeList(ctx context.Context, query, userID string) ([]string, error) {
	rows, err := a.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, oops.Code("FOLLOW_LIST_FAILED").With("user", userID).Wrap(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, oops.Code("FOLLOW_LIST_FAILED").With("user", userID).Wrap(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("FOLLOW_LIST_FAILED").With("user", userID).Wrap(err)
	}
	return ids, nil
}

func (a *Adapter) scanUser(row pgx.Row) (*core.User, error) {
	user := &core.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Name,
		&user.PasswordHash, &user.Bio, &user.ProfilePic,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, oops.Code("USER_SCAN_FAILED").Wrap(err)
	}
	return user, nil
}
