package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/validation"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, name, email, password_hash, tokens, liked, count_posts, about, avatar_key, created_at, updated_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Tokens, &u.Liked,
		&u.CountPosts, &u.About, &u.AvatarKey, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *UserRepository) queryUser(ctx context.Context, op, query string, args ...any) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return model.User{}, mapError(err, op)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.queryUser(ctx, "get user by id", query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.queryUser(ctx, "get user by email", query, email)
}

func (r *UserRepository) GetByToken(ctx context.Context, id uuid.UUID, token string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND $2 = ANY(tokens)`
	return r.queryUser(ctx, "get user by token", query, id, token)
}

func (r *UserRepository) Search(ctx context.Context, name string, limit, skip int) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
			  WHERE strpos(lower(name), lower($1)) > 0
			  ORDER BY name, id
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, name, limit, max(skip, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	if err := validation.Struct(user); err != nil {
		return model.User{}, err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `INSERT INTO users (id, name, email, password_hash, about, avatar_key)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + userColumns

	return r.queryUser(ctx, "create user", query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.About, user.AvatarKey,
	)
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	if err := validation.Struct(user); err != nil {
		return model.User{}, err
	}

	query := `UPDATE users SET name = $2, email = $3, about = $4, avatar_key = $5, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	return r.queryUser(ctx, "update user", query,
		user.ID, user.Name, user.Email, user.About, user.AvatarKey,
	)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) PushToken(ctx context.Context, id uuid.UUID, token string) (model.User, error) {
	query := `UPDATE users SET tokens = array_append(tokens, $2), updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.queryUser(ctx, "push token", query, id, token)
}

func (r *UserRepository) PullToken(ctx context.Context, id uuid.UUID, token string) (model.User, error) {
	// Slices around the first match only; array_remove would drop every duplicate.
	query := `UPDATE users SET
			      tokens = CASE
			          WHEN array_position(tokens, $2) IS NULL THEN tokens
			          ELSE tokens[:array_position(tokens, $2) - 1] || tokens[array_position(tokens, $2) + 1:]
			      END,
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.queryUser(ctx, "pull token", query, id, token)
}

func (r *UserRepository) ClearTokens(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `UPDATE users SET tokens = '{}', updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.queryUser(ctx, "clear tokens", query, id)
}

func (r *UserRepository) AddLiked(ctx context.Context, id uuid.UUID, postID uuid.UUID) (model.User, error) {
	query := `UPDATE users SET
			      liked = CASE WHEN $2 = ANY(liked) THEN liked ELSE array_append(liked, $2) END,
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.queryUser(ctx, "add liked post", query, id, postID)
}

func (r *UserRepository) RemoveLiked(ctx context.Context, id uuid.UUID, postID uuid.UUID) (model.User, error) {
	query := `UPDATE users SET liked = array_remove(liked, $2), updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.queryUser(ctx, "remove liked post", query, id, postID)
}

func (r *UserRepository) RemoveLikedMany(ctx context.Context, id uuid.UUID, postIDs []uuid.UUID) (model.User, error) {
	query := `UPDATE users SET
			      liked = ARRAY(SELECT p FROM unnest(liked) WITH ORDINALITY AS l(p, n) WHERE p <> ALL($2::uuid[]) ORDER BY n),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.queryUser(ctx, "remove liked posts", query, id, postIDs)
}

func (r *UserRepository) IncrementCountPosts(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `UPDATE users SET count_posts = count_posts + 1, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.queryUser(ctx, "increment post count", query, id)
}

func (r *UserRepository) DetachPost(ctx context.Context, id uuid.UUID, postID uuid.UUID) (model.User, error) {
	query := `UPDATE users SET
			      count_posts = GREATEST(count_posts - 1, 0),
			      liked = array_remove(liked, $2),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	return r.queryUser(ctx, "detach post", query, id, postID)
}
