package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
	"github.com/umar-hyatt/gardenkeeper/internal/dbx"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

const userColumns = `id, first_name, last_name, username, email, password_hash, role,
	 coalesce(location, ''), coalesce(climate, ''), coalesce(soil_type, ''), experience, registered_date`

func scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.UserName, &user.Email,
		&user.PasswordHash, &user.Role, &user.Location, &user.Climate, &user.SoilType,
		&user.Experience, &user.RegisteredDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	user.ID = uuid.NewString()

	query :=
		`INSERT INTO users (id, first_name, last_name, username, email, password_hash, role, location, climate, soil_type, experience)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, nullif($8, ''), nullif($9, ''), nullif($10, ''), $11)
		 RETURNING registered_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.UserName, user.Email, user.PasswordHash,
		user.Role, user.Location, user.Climate, user.SoilType, user.Experience,
	).Scan(&user.RegisteredDate)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username or email is taken", common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// Update reads the current row, applies the non-nil patch fields, and writes
// the result back inside one transaction so concurrent profile updates do not
// interleave column-wise.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch *Patch) (*User, error) {

	var updated *User

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
		user, err := scanUser(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			return err
		}

		applyPatch(user, patch)

		update :=
			`UPDATE users
			 SET first_name = $1, last_name = $2, username = $3, email = $4, password_hash = $5,
			     role = $6, location = nullif($7, ''), climate = nullif($8, ''), soil_type = nullif($9, ''), experience = $10
			 WHERE id = $11`

		if _, err := tx.ExecContext(ctx, update,
			user.FirstName, user.LastName, user.UserName, user.Email, user.PasswordHash,
			user.Role, user.Location, user.Climate, user.SoilType, user.Experience, id,
		); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: username or email is taken", common.ErrorAlreadyExists)
			}
			return fmt.Errorf("error performing sql request: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func applyPatch(user *User, patch *Patch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&user.FirstName, patch.FirstName)
	set(&user.LastName, patch.LastName)
	set(&user.UserName, patch.UserName)
	set(&user.Email, patch.Email)
	set(&user.PasswordHash, patch.PasswordHash)
	set(&user.Role, patch.Role)
	set(&user.Location, patch.Location)
	set(&user.Climate, patch.Climate)
	set(&user.SoilType, patch.SoilType)
	set(&user.Experience, patch.Experience)
}
