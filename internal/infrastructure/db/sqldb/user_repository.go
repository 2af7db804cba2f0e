package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

const userColumns = `id, username, email, password_hash, is_active, created_at, updated_at`

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	u.Groups = []string{}
	return &u, nil
}

// List returns active users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.sql.QueryContext(ctx, `SELECT `+userColumns+` FROM users WHERE is_active = TRUE ORDER BY id`)
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0)
	byID := make(map[int64]*domain.User)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		users = append(users, u)
		byID[u.ID] = u
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	grows, err := r.db.sql.QueryContext(ctx, `SELECT user_id, group_name FROM user_groups ORDER BY user_id, position`)
	if err != nil {
		return nil, err
	}
	defer grows.Close()
	for grows.Next() {
		var (
			uid   int64
			group string
		)
		if err := grows.Scan(&uid, &group); err != nil {
			return nil, err
		}
		if u, ok := byID[uid]; ok {
			u.Groups = append(u.Groups, group)
		}
	}
	return users, grows.Err()
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		q := r.db.rebind(`INSERT INTO users (username, email, password_hash, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`)
		err := tx.QueryRowContext(ctx, q, u.Username, u.Email, u.PasswordHash, u.IsActive, u.CreatedAt.UTC(), u.UpdatedAt.UTC()).Scan(&u.ID)
		if err != nil {
			return err
		}
		return r.replaceGroups(ctx, tx, u)
	})
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	u, err := scanUser(r.db.sql.QueryRowContext(ctx, r.db.rebind(query), arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	rows, err := r.db.sql.QueryContext(ctx, r.db.rebind(`SELECT group_name FROM user_groups WHERE user_id = $1 ORDER BY position`), u.ID)
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		u.Groups = append(u.Groups, g)
	}
	return u, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.inTx(ctx, func(tx *sql.Tx) error {
		q := r.db.rebind(`UPDATE users SET username = $1, email = $2, password_hash = $3, is_active = $4, updated_at = $5 WHERE id = $6`)
		res, err := tx.ExecContext(ctx, q, u.Username, u.Email, u.PasswordHash, u.IsActive, u.UpdatedAt.UTC(), u.ID)
		if err != nil {
			return err
		}
		if err := requireRow(res, domain.ErrUserNotFound); err != nil {
			return err
		}
		return r.replaceGroups(ctx, tx, u)
	})
}

func (r *UserRepository) replaceGroups(ctx context.Context, tx *sql.Tx, u *domain.User) error {
	if _, err := tx.ExecContext(ctx, r.db.rebind(`DELETE FROM user_groups WHERE user_id = $1`), u.ID); err != nil {
		return err
	}
	q := r.db.rebind(`INSERT INTO user_groups (user_id, group_name, position) VALUES ($1, $2, $3)`)
	for i, g := range u.Groups {
		if _, err := tx.ExecContext(ctx, q, u.ID, g, i); err != nil {
			return err
		}
	}
	return nil
}

// inTx runs fn in a transaction and maps unique violations to
// domain.ErrUserExists.
func (r *UserRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return err
	}
	return tx.Commit()
}
