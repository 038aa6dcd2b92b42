package repositories

import (
	"testing"

	"brs-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUpsertReturnsSurvivingRowID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// LAST_INSERT_ID(id) makes the duplicate-key path report the existing
	// row's id through LastInsertId, same as a fresh insert.
	mock.ExpectExec("INSERT INTO trip_schedules").
		WithArgs(int64(42), "2024-06-01", 12).
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := ScheduleRepo{DB: db}
	id, err := repo.Upsert(42, "2024-06-01", 12)
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected schedule id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClaimReturnsPreIncrementSeat(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Pre-increment seats_claimed rides back as LastInsertId: 3 seats were
	// claimed before, so this claim gets seat 3.
	mock.ExpectExec("UPDATE trip_schedules").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := ScheduleRepo{DB: db}
	seat, err := repo.Claim(5)
	if err != nil {
		t.Fatalf("Claim error: %v", err)
	}
	if seat != 3 {
		t.Fatalf("expected seat 3, got %d", seat)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClaimSoldOut(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trip_schedules").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, trip_id, trip_date, capacity, seats_claimed").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "trip_date", "capacity", "seats_claimed"}).
			AddRow(5, 42, "2024-06-01", 2, 2))

	repo := ScheduleRepo{DB: db}
	_, err = repo.Claim(5)
	if !domain.IsSoldOut(err) {
		t.Fatalf("expected SoldOutError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClaimMissingSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trip_schedules").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, trip_id, trip_date, capacity, seats_claimed").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "trip_date", "capacity", "seats_claimed"}))

	repo := ScheduleRepo{DB: db}
	_, err = repo.Claim(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReleaseUnderflow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trip_schedules").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, trip_id, trip_date, capacity, seats_claimed").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "trip_date", "capacity", "seats_claimed"}).
			AddRow(5, 42, "2024-06-01", 2, 0))

	repo := ScheduleRepo{DB: db}
	err = repo.Release(5)
	if !domain.IsUnderflow(err) {
		t.Fatalf("expected UnderflowError, got %v", err)
	}
}

func TestReleaseDecrements(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE trip_schedules").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := ScheduleRepo{DB: db}
	if err := repo.Release(5); err != nil {
		t.Fatalf("Release error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
