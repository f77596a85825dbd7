package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/db"
	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	"github.com/AlibekovAA/caption-studio/backend/internal/user/domain"
)

// Repository stores users keyed by a unique normalized email. Create returns
// commonerrors.ErrEmailAlreadyExists on duplicates; lookups return
// commonerrors.ErrUserNotFound.
type Repository interface {
	Create(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateLastLogin(ctx context.Context, id domain.ID, at time.Time) error
	List(ctx context.Context) ([]domain.User, error)
}

// PgRepository retries reads on transient connection failures. Writes run
// once so a retried INSERT cannot surface as a duplicate.
type PgRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewPgRepository(pool *pgxpool.Pool, log *logger.Logger) *PgRepository {
	return &PgRepository{pool: pool, log: log}
}

func (r *PgRepository) Create(ctx context.Context, user domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DBQueryTimeout)
	defer cancel()

	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		string(user.ID),
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil && db.IsUniqueViolation(err) {
		return commonerrors.ErrEmailAlreadyExists
	}
	return db.HandleQueryError(err, nil, "create_user", start)
}

func (r *PgRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := db.RetryWithBackoff(ctx, r.log, db.DefaultRetryConfig, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, constants.DBQueryTimeout)
		defer cancel()

		start := time.Now()
		row := r.pool.QueryRow(
			ctx,
			`SELECT id::text, email, password_hash, created_at, last_login FROM users WHERE lower(email) = $1`,
			domain.NormalizeEmail(email),
		)
		err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.LastLogin)
		return db.HandleQueryError(err, commonerrors.ErrUserNotFound, "find_user_by_email", start)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *PgRepository) UpdateLastLogin(ctx context.Context, id domain.ID, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DBQueryTimeout)
	defer cancel()

	start := time.Now()
	tag, err := r.pool.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, string(id), at)
	if err = db.HandleQueryError(err, nil, "update_last_login", start); err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return commonerrors.ErrUserNotFound
	}
	return nil
}

func (r *PgRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := db.RetryWithBackoff(ctx, r.log, db.DefaultRetryConfig, func(ctx context.Context) error {
		var err error
		users, err = r.list(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PgRepository) list(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DBQueryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT id::text, email, password_hash, created_at, last_login
		 FROM users
		 ORDER BY created_at ASC, email ASC`,
	)
	if err = db.HandleQueryError(err, nil, "list_users", start); err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.LastLogin); err != nil {
			return nil, db.HandleQueryError(err, nil, "scan_user", start)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, db.HandleQueryError(err, nil, "list_users_rows", start)
	}
	return users, nil
}
