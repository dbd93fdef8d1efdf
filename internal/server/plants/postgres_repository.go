package plants

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

const plantColumns = `id, name, category, image, characteristics, care_requirements, growth_stage, age, user_id, created_at, updated_at`

func scanPlant(s interface {
	Scan(dest ...any) error
}) (*Plant, error) {
	p := &Plant{}
	err := s.Scan(&p.ID, &p.Name, &p.Category, &p.Image, &p.Characteristics,
		&p.CareRequirements, &p.GrowthStage, &p.Age, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*Plant, error) {

	query := `SELECT ` + plantColumns + ` FROM plants WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*Plant{}
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading sql rows: %w", err)
	}

	return result, nil
}

// Create persists a new plant owned by userID. The owner always comes from
// the verified identity, never from the request body.
func (r *PostgresRepository) Create(ctx context.Context, userID string, in *Input) (*Plant, error) {

	p := &Plant{
		ID:               uuid.NewString(),
		Name:             *in.Name,
		Category:         *in.Category,
		Image:            *in.Image,
		Characteristics:  *in.Characteristics,
		CareRequirements: *in.CareRequirements,
		GrowthStage:      *in.GrowthStage,
		Age:              *in.Age,
		UserID:           userID,
	}

	query :=
		`INSERT INTO plants (id, name, category, image, characteristics, care_requirements, growth_stage, age, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Name, p.Category, p.Image, p.Characteristics, p.CareRequirements,
		p.GrowthStage, p.Age, p.UserID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return p, nil
}

// Update applies the non-nil input fields to the record, bumping updated_at.
// The WHERE clause carries both id and user_id so a record owned by someone
// else fails exactly like a missing one.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, in *Input) (*Plant, error) {

	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(column string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("name", in.Name)
	add("category", in.Category)
	add("image", in.Image)
	add("characteristics", in.Characteristics)
	add("care_requirements", in.CareRequirements)
	add("growth_stage", in.GrowthStage)
	add("age", in.Age)

	args = append(args, id, userID)
	query := fmt.Sprintf(
		`UPDATE plants SET %s WHERE id = $%d AND user_id = $%d RETURNING `+plantColumns,
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	return scanPlant(r.db.QueryRowContext(ctx, query, args...))
}

// Delete removes the record, gated on ownership the same way Update is.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM plants WHERE id = $1 AND user_id = $2`, id, userID)
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
