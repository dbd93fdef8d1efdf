package tasks

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

const taskColumns = `id, title, category, priority, due, reminder, reminder_time, coalesce(notes, ''), completed, user_id, created_at, updated_at`

func scanTask(s interface {
	Scan(dest ...any) error
}) (*Task, error) {
	t := &Task{}
	var reminder sql.NullInt64
	var reminderTime sql.NullTime

	err := s.Scan(&t.ID, &t.Title, &t.Category, &t.Priority, &t.Due, &reminder,
		&reminderTime, &t.Notes, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if reminder.Valid {
		v := int(reminder.Int64)
		t.Reminder = &v
	}
	if reminderTime.Valid {
		v := reminderTime.Time
		t.ReminderTime = &v
	}

	return t, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*Task, error) {

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading sql rows: %w", err)
	}

	return result, nil
}

// Create persists a new task owned by userID; the owner always comes from the
// verified identity. Priority defaults to medium, completed to false.
func (r *PostgresRepository) Create(ctx context.Context, userID string, in *Input) (*Task, error) {

	t := &Task{
		ID:           uuid.NewString(),
		Title:        *in.Title,
		Category:     *in.Category,
		Priority:     PriorityMedium,
		Due:          *in.Due,
		Reminder:     in.Reminder,
		ReminderTime: in.ReminderTime,
		UserID:       userID,
	}
	if in.Priority != nil && *in.Priority != "" {
		t.Priority = *in.Priority
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}

	query :=
		`INSERT INTO tasks (id, title, category, priority, due, reminder, reminder_time, notes, completed, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, nullif($8, ''), $9, $10)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.Title, t.Category, t.Priority, t.Due, t.Reminder, t.ReminderTime,
		t.Notes, t.Completed, t.UserID,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return t, nil
}

// Update applies the non-nil input fields, bumping updated_at. The WHERE
// clause carries both id and user_id so a foreign record fails exactly like
// a missing one.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, in *Input) (*Task, error) {

	set := []string{"updated_at = now()"}
	args := []any{}
	add := func(column string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.Category != nil {
		add("category", *in.Category)
	}
	if in.Priority != nil && *in.Priority != "" {
		add("priority", *in.Priority)
	}
	if in.Due != nil {
		add("due", *in.Due)
	}
	if in.Reminder != nil {
		add("reminder", *in.Reminder)
	}
	if in.ReminderTime != nil {
		add("reminder_time", *in.ReminderTime)
	}
	if in.Notes != nil {
		add("notes", *in.Notes)
	}
	if in.Completed != nil {
		add("completed", *in.Completed)
	}

	args = append(args, id, userID)
	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING `+taskColumns,
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	return scanTask(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {

	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
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
