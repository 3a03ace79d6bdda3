package translation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/ordbog-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(func() { mock.Close() })
	return mock
}

func TestRepo_FindOrCreate_ExistingRowIsReused(t *testing.T) {
	existingID := uuid.New()
	now := time.Now().UTC()

	mock := newMock(t)
	rows := pgxmock.NewRows([]string{"id", "content", "language_code", "source_type", "created_at"}).
		AddRow(existingID, "dog", "en", "ai_translate", now)
	mock.ExpectQuery(`SELECT .+ FROM translations`).WillReturnRows(rows)

	repo := New(mock)
	got, err := repo.FindOrCreate(context.Background(), "dog", domain.LanguageEnglish, domain.SourceTypeAITranslate)
	if err != nil {
		t.Fatalf("FindOrCreate() unexpected error: %v", err)
	}

	if got.ID != existingID {
		t.Errorf("FindOrCreate() reused id = %s, want %s", got.ID, existingID)
	}

	// No INSERT was expected: the dedup lookup short-circuits creation.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_FindOrCreate_CreatesWhenAbsent(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM translations`).WillReturnError(pgx.ErrNoRows)
	mock.ExpectExec(`INSERT INTO translations`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := New(mock)
	got, err := repo.FindOrCreate(context.Background(), "dog", domain.LanguageEnglish, domain.SourceTypeAITranslate)
	if err != nil {
		t.Fatalf("FindOrCreate() unexpected error: %v", err)
	}

	if got.ID == uuid.Nil {
		t.Error("FindOrCreate() created translation with nil id")
	}
	if got.Content != "dog" {
		t.Errorf("Content = %q, want %q", got.Content, "dog")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_FindOrCreate_LookupErrorPropagates(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM translations`).WillReturnError(errors.New("boom"))

	repo := New(mock)
	if _, err := repo.FindOrCreate(context.Background(), "dog", domain.LanguageEnglish, domain.SourceTypeAITranslate); err == nil {
		t.Fatal("FindOrCreate() expected error, got nil")
	}
}

func TestRepo_AttachToDefinition_Idempotent(t *testing.T) {
	mock := newMock(t)
	// ON CONFLICT DO NOTHING: second attach affects 0 rows but still succeeds.
	mock.ExpectExec(`INSERT INTO definition_translations`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO definition_translations`).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	repo := New(mock)
	defID, trID := uuid.New(), uuid.New()

	if err := repo.AttachToDefinition(context.Background(), defID, trID); err != nil {
		t.Fatalf("first AttachToDefinition: %v", err)
	}
	if err := repo.AttachToDefinition(context.Background(), defID, trID); err != nil {
		t.Fatalf("second AttachToDefinition: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_AttachToExample(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO example_translations`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := New(mock)
	if err := repo.AttachToExample(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("AttachToExample: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_CountByDefinition(t *testing.T) {
	mock := newMock(t)
	rows := pgxmock.NewRows([]string{"count"}).AddRow(3)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(rows)

	repo := New(mock)
	count, err := repo.CountByDefinition(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("CountByDefinition: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}
