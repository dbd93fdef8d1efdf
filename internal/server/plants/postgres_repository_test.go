package plants

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	repo, err := NewPostgresRepository(db)
	if err != nil {
		t.Fatalf("NewPostgresRepository error: %v", err)
	}
	return repo, mock, db
}

func plantRows(ps ...*Plant) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "category", "image", "characteristics", "care_requirements",
		"growth_stage", "age", "user_id", "created_at", "updated_at",
	})
	for _, p := range ps {
		rows.AddRow(p.ID, p.Name, p.Category, p.Image, p.Characteristics,
			p.CareRequirements, p.GrowthStage, p.Age, p.UserID, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func samplePlant(id, userID string) *Plant {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	return &Plant{
		ID: id, Name: "Tomato", Category: "Vegetables", Image: "images/u/t.jpg",
		Characteristics: "Red fruit", CareRequirements: "Full sun",
		GrowthStage: StageSeedling, Age: "2 weeks", UserID: userID,
		CreatedAt: now, UpdatedAt: now,
	}
}

func strPtr(s string) *string { return &s }

func TestList_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*FROM plants WHERE user_id = \$1 ORDER BY created_at`).
		WithArgs("u-1").
		WillReturnRows(plantRows(samplePlant("p-1", "u-1"), samplePlant("p-2", "u-1")))

	got, err := repo.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 plants, got %d", len(got))
	}
	if got[0].UserID != "u-1" || got[1].UserID != "u-1" {
		t.Fatalf("unexpected owners: %+v", got)
	}
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*FROM plants WHERE user_id = \$1`).
		WithArgs("u-2").
		WillReturnRows(plantRows())

	got, err := repo.List(context.Background(), "u-2")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestCreate_ForcesOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+plants\s*\(id, name,.*RETURNING created_at, updated_at`).
		WithArgs(sqlmock.AnyArg(), "Tomato", "Vegetables", "images/u/t.jpg",
			"Red fruit", "Full sun", StageSeedling, "2 weeks", "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	in := &Input{
		Name: strPtr("Tomato"), Category: strPtr("Vegetables"), Image: strPtr("images/u/t.jpg"),
		Characteristics: strPtr("Red fruit"), CareRequirements: strPtr("Full sun"),
		GrowthStage: strPtr(StageSeedling), Age: strPtr("2 weeks"),
	}
	got, err := repo.Create(context.Background(), "u-1", in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id, got empty")
	}
	if got.UserID != "u-1" {
		t.Fatalf("owner must come from the caller identity, got %q", got.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_PartialSetClause(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	want := samplePlant("p-1", "u-1")
	want.GrowthStage = StageMature

	mock.ExpectQuery(`UPDATE plants SET updated_at = now\(\), growth_stage = \$1 WHERE id = \$2 AND user_id = \$3 RETURNING`).
		WithArgs(StageMature, "p-1", "u-1").
		WillReturnRows(plantRows(want))

	got, err := repo.Update(context.Background(), "u-1", "p-1", &Input{GrowthStage: strPtr(StageMature)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.GrowthStage != StageMature || got.Name != "Tomato" {
		t.Fatalf("unexpected plant: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_ForeignRecordLooksMissing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE plants SET`).
		WithArgs("Stolen", "p-1", "u-other").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "u-other", "p-1", &Input{Name: strPtr("Stolen")})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM plants WHERE id = \$1 AND user_id = \$2`).
		WithArgs("p-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "u-1", "p-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NoRowsIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM plants`).
		WithArgs("p-1", "u-other").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "u-other", "p-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
