package people

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"teamlens-backend/internal/talents"
)

func TestPGRepoCreateEncodesRankedTalents(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	person := Person{
		ID:              "person-1",
		Name:            "Dana Reyes",
		PersonalityType: "INTJ",
		RankedTalents:   []talents.Ranked{{ID: 33, Rank: 1}},
	}

	mock.ExpectExec("INSERT INTO people").
		WithArgs(
			person.ID,
			person.Name,
			person.PersonalityType,
			[]byte(`[{"id":33,"rank":1}]`),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), person); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "personality_type", "ranked_talents", "created_at", "updated_at"}).
		AddRow("person-1", "Dana Reyes", "INTJ", []byte(`[{"id":33,"rank":1},{"id":4,"rank":2}]`), now, now)
	mock.ExpectQuery("SELECT id, name, personality_type, ranked_talents").
		WithArgs("person-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	person, err := repo.GetByID(context.Background(), "person-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if person.Name != "Dana Reyes" || person.PersonalityType != "INTJ" {
		t.Fatalf("unexpected person %+v", person)
	}
	if len(person.RankedTalents) != 2 || person.RankedTalents[0].ID != 33 {
		t.Fatalf("unexpected talents %+v", person.RankedTalents)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, name, personality_type, ranked_talents").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("UPDATE people").
		WithArgs("missing", "Name", nil, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Update(context.Background(), Person{ID: "missing", Name: "Name"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
