package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/validation"
)

var _ model.PostStore = (*PostRepository)(nil)

const postColumns = `id, owner_id, heading, content, likes, picture_key, created_at, updated_at`

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func scanPost(row pgx.Row) (model.Post, error) {
	var p model.Post
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Heading, &p.Content, &p.Likes, &p.PictureKey, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *PostRepository) queryPost(ctx context.Context, op, query string, args ...any) (model.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Post{}, mapError(err, op)
	}
	return p, nil
}

func (r *PostRepository) queryPosts(ctx context.Context, op, query string, args ...any) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	if err := validation.Struct(post); err != nil {
		return model.Post{}, err
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	query := `INSERT INTO posts (id, owner_id, heading, content, likes, picture_key)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + postColumns

	return r.queryPost(ctx, "create post", query,
		post.ID, post.OwnerID, post.Heading, post.Content, post.Likes, post.PictureKey,
	)
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return r.queryPost(ctx, "get post by id", query, id)
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, skip int) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
			  WHERE owner_id = $1
			  ORDER BY created_at DESC, id
			  LIMIT $2 OFFSET $3`
	return r.queryPosts(ctx, "list posts by owner", query, ownerID, limit, max(skip, 0))
}

func (r *PostRepository) GetMany(ctx context.Context, ids []uuid.UUID) ([]model.Post, error) {
	if len(ids) == 0 {
		return []model.Post{}, nil
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = ANY($1::uuid[])`
	return r.queryPosts(ctx, "get posts by ids", query, ids)
}

func (r *PostRepository) IncrementLikes(ctx context.Context, id uuid.UUID, delta int) (model.Post, error) {
	query := `UPDATE posts SET likes = GREATEST(likes + $2, 0), updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + postColumns
	return r.queryPost(ctx, "increment likes", query, id, delta)
}

func (r *PostRepository) SetPictureKey(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, key string) (model.Post, error) {
	query := `UPDATE posts SET picture_key = $3, updated_at = NOW()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + postColumns
	return r.queryPost(ctx, "set post picture", query, id, ownerID, key)
}

func (r *PostRepository) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Post, error) {
	query := `DELETE FROM posts WHERE id = $1 AND owner_id = $2 RETURNING ` + postColumns
	return r.queryPost(ctx, "delete post", query, id, ownerID)
}

func (r *PostRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Post, error) {
	query := `DELETE FROM posts WHERE owner_id = $1 RETURNING ` + postColumns
	return r.queryPosts(ctx, "delete posts by owner", query, ownerID)
}
