package reports

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateWritesSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	report := Report{
		ID:            "report-1",
		PersonID:      "person-1",
		Mode:          "full",
		SchemaVersion: "analysis.v1",
		Result:        []byte(`{"mode":"full"}`),
	}

	mock.ExpectExec("INSERT INTO analysis_reports").
		WithArgs(report.ID, report.PersonID, report.Mode, report.SchemaVersion, []byte(report.Result)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), report); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByPersonOrdersNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "person_id", "mode", "schema_version", "result", "created_at"}).
		AddRow("r2", "person-1", "full", "analysis.v1", []byte(`{}`), now).
		AddRow("r1", "person-1", "talents_only", "analysis.v1", []byte(`{}`), now.Add(-time.Hour))
	mock.ExpectQuery("SELECT id, person_id, mode, schema_version, result, created_at").
		WithArgs("person-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	list, err := repo.ListByPerson(context.Background(), "person-1")
	if err != nil {
		t.Fatalf("ListByPerson: %v", err)
	}
	if len(list) != 2 || list[0].ID != "r2" {
		t.Fatalf("unexpected list %+v", list)
	}
}
