package repo

import (
	"context"

	dom "todoapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepo interface {
	Create(ctx context.Context, name string) (dom.Item, error)
	GetByID(ctx context.Context, id int64) (dom.Item, error)
	List(ctx context.Context) ([]dom.Item, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (dom.Item, error)
	Delete(ctx context.Context, id int64) error
}

type PGItemRepo struct {
	db *pgxpool.Pool
}

func NewPGItemRepo(db *pgxpool.Pool) *PGItemRepo {
	return &PGItemRepo{db: db}
}

func (r *PGItemRepo) Create(ctx context.Context, name string) (dom.Item, error) {
	query := `
		INSERT INTO items (name)
		VALUES ($1)
		RETURNING id, name, completed, completed_at, created_at, updated_at`
	var out dom.Item
	err := r.db.QueryRow(ctx, query, name).Scan(
		&out.ID, &out.Name, &out.Completed, &out.CompletedAt,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGItemRepo) GetByID(ctx context.Context, id int64) (dom.Item, error) {
	query := `
		SELECT id, name, completed, completed_at, created_at, updated_at
		FROM items WHERE id = $1`
	var it dom.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Completed, &it.CompletedAt,
		&it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

func (r *PGItemRepo) List(ctx context.Context) ([]dom.Item, error) {
	query := `
		SELECT id, name, completed, completed_at, created_at, updated_at
		FROM items ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Item
	for rows.Next() {
		var it dom.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Completed, &it.CompletedAt,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// SetCompleted flips the completed flag and keeps completed_at in sync:
// NOW() while completed, NULL once reopened.
func (r *PGItemRepo) SetCompleted(ctx context.Context, id int64, completed bool) (dom.Item, error) {
	query := `
		UPDATE items
		SET completed = $2,
		    completed_at = CASE WHEN $2 THEN NOW() ELSE NULL END,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, completed, completed_at, created_at, updated_at`
	var it dom.Item
	err := r.db.QueryRow(ctx, query, id, completed).Scan(
		&it.ID, &it.Name, &it.Completed, &it.CompletedAt,
		&it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

// Delete removes the row for good. Reports pgx.ErrNoRows when nothing matched
// so callers can treat it like any other lookup miss.
func (r *PGItemRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
