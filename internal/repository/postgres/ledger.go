package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dtroode/gophfeed-server/internal/model"
)

var _ model.LedgerStore = (*LedgerRepository)(nil)

// LedgerRepository runs set-based reconciliation statements. Each statement is atomic on its own;
// the three are not run in one transaction, so writes between them are picked up by the next sweep.
type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

const (
	pruneDanglingQuery = `
		UPDATE users u SET
		    liked = ARRAY(
		        SELECT l.p FROM unnest(u.liked) WITH ORDINALITY AS l(p, n)
		        WHERE EXISTS (SELECT 1 FROM posts WHERE posts.id = l.p)
		        ORDER BY l.n
		    ),
		    updated_at = NOW()
		WHERE EXISTS (
		    SELECT 1 FROM unnest(u.liked) AS d(p)
		    WHERE NOT EXISTS (SELECT 1 FROM posts WHERE posts.id = d.p)
		)`

	recountLikesQuery = `
		UPDATE posts p SET likes = c.n, updated_at = NOW()
		FROM (
		    SELECT p2.id, COUNT(u.id)::int AS n
		    FROM posts p2
		    LEFT JOIN users u ON p2.id = ANY(u.liked)
		    GROUP BY p2.id
		) c
		WHERE p.id = c.id AND p.likes <> c.n`

	recountPostsQuery = `
		UPDATE users u SET count_posts = c.n, updated_at = NOW()
		FROM (
		    SELECT u2.id, COUNT(p.id)::int AS n
		    FROM users u2
		    LEFT JOIN posts p ON p.owner_id = u2.id
		    GROUP BY u2.id
		) c
		WHERE u.id = c.id AND u.count_posts <> c.n`
)

func (r *LedgerRepository) PruneDangling(ctx context.Context) (int64, error) {
	return r.exec(ctx, "prune dangling likes", pruneDanglingQuery)
}

func (r *LedgerRepository) RecountLikes(ctx context.Context) (int64, error) {
	return r.exec(ctx, "recount likes", recountLikesQuery)
}

func (r *LedgerRepository) RecountPosts(ctx context.Context) (int64, error) {
	return r.exec(ctx, "recount posts", recountPostsQuery)
}

func (r *LedgerRepository) exec(ctx context.Context, op, query string) (int64, error) {
	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows of %s: %w", op, err)
	}
	return n, nil
}
