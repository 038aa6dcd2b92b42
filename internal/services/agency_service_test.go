package services

import (
	"testing"

	"brs-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAddCabRejectsNonPositiveCapacity(t *testing.T) {
	svc := AgencyService{}
	if _, err := svc.AddCab("AG1", "CAB1", "Toyota", 0); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAddCabDuplicateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, code, name, details, owner_id FROM agencies").
		WithArgs("AG1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "details", "owner_id"}).
			AddRow(4, "AG1", "Agency One", "", 1))
	mock.ExpectQuery("SELECT id, code, capacity, make, agency_id FROM cabs").
		WithArgs("CAB1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "capacity", "make", "agency_id"}).
			AddRow(3, "CAB1", 12, "Toyota", 4))

	svc := AgencyService{DB: db}
	if _, err := svc.AddCab("AG1", "CAB1", "Toyota", 12); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddStopDuplicateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, code, name, detail FROM stops").
		WithArgs("AAA").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "detail"}).AddRow(1, "AAA", "A", ""))

	svc := AgencyService{DB: db}
	if _, err := svc.AddStop("AAA", "A", ""); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}
