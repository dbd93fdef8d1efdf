package observations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
	"github.com/umar-hyatt/gardenkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

const observationColumns = `id, plant_name, coalesce(height, ''), health, coalesce(notes, ''), coalesce(next_action, ''), user_id, created_at, updated_at`

func scanObservation(s interface {
	Scan(dest ...any) error
}) (*Observation, error) {
	o := &Observation{}
	err := s.Scan(&o.ID, &o.PlantName, &o.Height, &o.Health, &o.Notes,
		&o.NextAction, &o.UserID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return o, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*Observation, error) {

	query := `SELECT ` + observationColumns + ` FROM observations WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*Observation{}
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading sql rows: %w", err)
	}

	return result, nil
}

// Create persists a new observation owned by userID; the owner always comes
// from the verified identity. Health defaults to good.
func (r *PostgresRepository) Create(ctx context.Context, userID string, in *Input) (*Observation, error) {

	o := &Observation{
		ID:        uuid.NewString(),
		PlantName: *in.PlantName,
		Health:    HealthGood,
		UserID:    userID,
	}
	if in.Health != nil && *in.Health != "" {
		o.Health = *in.Health
	}
	if in.Height != nil {
		o.Height = *in.Height
	}
	if in.Notes != nil {
		o.Notes = *in.Notes
	}
	if in.NextAction != nil {
		o.NextAction = *in.NextAction
	}

	query :=
		`INSERT INTO observations (id, plant_name, height, health, notes, next_action, user_id)
		 VALUES ($1, $2, nullif($3, ''), $4, nullif($5, ''), nullif($6, ''), $7)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		o.ID, o.PlantName, o.Height, o.Health, o.Notes, o.NextAction, o.UserID,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return o, nil
}

// Update applies the non-nil input fields, bumping updated_at. The WHERE
// clause carries both id and user_id so a foreign record fails exactly like
// a missing one.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, in *Input) (*Observation, error) {

	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(column string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("plant_name", in.PlantName)
	add("height", in.Height)
	if in.Health != nil && *in.Health != "" {
		add("health", in.Health)
	}
	add("notes", in.Notes)
	add("next_action", in.NextAction)

	args = append(args, id, userID)
	query := fmt.Sprintf(
		`UPDATE observations SET %s WHERE id = $%d AND user_id = $%d RETURNING `+observationColumns,
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	return scanObservation(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM observations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading sql result: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
