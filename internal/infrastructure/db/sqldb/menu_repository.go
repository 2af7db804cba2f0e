package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

type MenuItemRepository struct {
	db *DB
}

func NewMenuItemRepository(db *DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

func (r *MenuItemRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, `SELECT id, title, price, inventory FROM menu_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Title, &m.Price, &m.Inventory); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

func (r *MenuItemRepository) Create(ctx context.Context, m *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.rebind(`INSERT INTO menu_items (title, price, inventory) VALUES ($1, $2, $3) RETURNING id`)
	return r.db.sql.QueryRowContext(ctx, q, m.Title, m.Price.StringFixed(domain.PriceScale), m.Inventory).Scan(&m.ID)
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.rebind(`SELECT id, title, price, inventory FROM menu_items WHERE id = $1`)
	var m domain.MenuItem
	if err := r.db.sql.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.Price, &m.Inventory); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, m *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.rebind(`UPDATE menu_items SET title = $1, price = $2, inventory = $3 WHERE id = $4`)
	res, err := r.db.sql.ExecContext(ctx, q, m.Title, m.Price.StringFixed(domain.PriceScale), m.Inventory, m.ID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrMenuItemNotFound)
}

func (r *MenuItemRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.sql.ExecContext(ctx, r.db.rebind(`DELETE FROM menu_items WHERE id = $1`), id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrMenuItemNotFound)
}

// requireRow returns notFound when res affected no rows.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
