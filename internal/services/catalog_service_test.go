package services

import (
	"testing"

	"brs-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateRoutePairRejectsIdenticalStops(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := CatalogService{DB: db}
	_, _, err = svc.CreateRoutePair(CreateRouteInput{
		SourceStopCode: "AAA",
		DestStopCode:   "aaa",
		CabCode:        "CAB1",
		AgencyCode:     "AG1",
		Fare:           150,
		JourneyTime:    90,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// zero expectations registered: nothing may touch the database
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRoutePairCreatesReverseDirection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	stopRows := func(id int64, code string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "code", "name", "detail"}).AddRow(id, code, code+" stop", "")
	}
	mock.ExpectQuery("SELECT id, code, name, detail FROM stops").
		WithArgs("AAA").WillReturnRows(stopRows(1, "AAA"))
	mock.ExpectQuery("SELECT id, code, name, detail FROM stops").
		WithArgs("BBB").WillReturnRows(stopRows(2, "BBB"))
	mock.ExpectQuery("SELECT id, code, name, details, owner_id FROM agencies").
		WithArgs("AG1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "details", "owner_id"}).
			AddRow(4, "AG1", "Agency One", "", 1))
	mock.ExpectQuery("SELECT id, code, capacity, make, agency_id FROM cabs").
		WithArgs("CAB1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "capacity", "make", "agency_id"}).
			AddRow(3, "CAB1", 12, "Toyota", 4))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").
		WithArgs(int64(150), 90, int64(1), int64(2), int64(3), int64(4)).
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO trips").
		WithArgs(int64(150), 90, int64(2), int64(1), int64(3), int64(4)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	svc := CatalogService{DB: db}
	to, fro, err := svc.CreateRoutePair(CreateRouteInput{
		SourceStopCode: "AAA",
		DestStopCode:   "BBB",
		CabCode:        "CAB1",
		AgencyCode:     "AG1",
		Fare:           150,
		JourneyTime:    90,
	})
	if err != nil {
		t.Fatalf("CreateRoutePair error: %v", err)
	}
	if to.SourceStopID != 1 || to.DestStopID != 2 {
		t.Fatalf("to-trip endpoints wrong: %+v", to)
	}
	if fro.SourceStopID != 2 || fro.DestStopID != 1 {
		t.Fatalf("fro-trip endpoints not swapped: %+v", fro)
	}
	if to.Fare != fro.Fare || to.JourneyTime != fro.JourneyTime || to.CabID != fro.CabID || to.AgencyID != fro.AgencyID {
		t.Fatalf("pair does not share fare/duration/cab/agency: %+v vs %+v", to, fro)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRoutePairUnknownStop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, code, name, detail FROM stops").
		WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "detail"}))

	svc := CatalogService{DB: db}
	_, _, err = svc.CreateRoutePair(CreateRouteInput{
		SourceStopCode: "NOPE",
		DestStopCode:   "BBB",
		CabCode:        "CAB1",
		AgencyCode:     "AG1",
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
