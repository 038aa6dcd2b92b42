package services

import (
	"database/sql"
	"fmt"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
	"brs-backend/internal/repositories"
	"brs-backend/internal/utils"
)

// AgencyService carries the agency-management surface: agencies, their cabs
// and the stop catalog. The booking engine only reads what this writes.
type AgencyService struct {
	AgencyRepo repositories.AgencyRepo
	StopRepo   repositories.StopRepo
	UserRepo   repositories.UserRepo
	DB         *sql.DB
	RequestID  string
}

func (s AgencyService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AgencyService) agencies() repositories.AgencyRepo {
	if s.AgencyRepo.DB != nil {
		return s.AgencyRepo
	}
	return repositories.AgencyRepo{DB: s.db()}
}

func (s AgencyService) stops() repositories.StopRepo {
	if s.StopRepo.DB != nil {
		return s.StopRepo
	}
	return repositories.StopRepo{DB: s.db()}
}

func (s AgencyService) users() repositories.UserRepo {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepo{DB: s.db()}
}

// AddAgency registers a new agency owned by an existing user. The code is
// generated from the name, 8 chars.
func (s AgencyService) AddAgency(name, details string, ownerID int64) (models.Agency, error) {
	var agency models.Agency

	name = utils.NormalizeSpace(name)
	if name == "" {
		return agency, domain.ValidationError{Field: "name", Msg: "nama agency kosong"}
	}
	if _, err := s.users().GetByID(ownerID); err != nil {
		return agency, err
	}
	if _, err := s.agencies().GetByName(name); err == nil {
		return agency, domain.ConflictError{Resource: "agency", Msg: "nama sudah terdaftar"}
	} else if !domain.IsNotFound(err) {
		return agency, err
	}

	agency = models.Agency{
		Code:    utils.AlphaNumericCode(8, name),
		Name:    name,
		Details: details,
		OwnerID: ownerID,
	}
	agency, err := s.agencies().Insert(agency)
	if err != nil {
		return agency, domain.InternalError{Msg: "gagal menyimpan agency", Err: err}
	}

	utils.LogEvent(s.RequestID, "agency", "add_agency",
		fmt.Sprintf("agency_id=%d code=%s", agency.ID, agency.Code))
	return agency, nil
}

// AddCab registers a cab under an agency. Cab codes are globally unique.
func (s AgencyService) AddCab(agencyCode, cabCode, make string, capacity int) (models.Cab, error) {
	var cab models.Cab

	if capacity <= 0 {
		return cab, domain.ValidationError{Field: "capacity", Msg: "kapasitas harus lebih dari 0"}
	}
	agency, err := s.agencies().GetByCode(agencyCode)
	if err != nil {
		return cab, err
	}
	if _, err := s.agencies().GetCabByCode(cabCode); err == nil {
		return cab, domain.ConflictError{Resource: "cab", Msg: "kode cab sudah terdaftar"}
	} else if !domain.IsNotFound(err) {
		return cab, err
	}

	cab = models.Cab{
		Code:     cabCode,
		Capacity: capacity,
		Make:     make,
		AgencyID: agency.ID,
	}
	cab, err = s.agencies().InsertCab(cab)
	if err != nil {
		return cab, domain.InternalError{Msg: "gagal menyimpan cab", Err: err}
	}

	utils.LogEvent(s.RequestID, "agency", "add_cab",
		fmt.Sprintf("cab_id=%d agency=%s capacity=%d", cab.ID, agency.Code, capacity))
	return cab, nil
}

// AddStop registers a stop. Stop codes are unique and stable.
func (s AgencyService) AddStop(code, name, detail string) (models.Stop, error) {
	var stop models.Stop

	code = utils.TrimOrEmpty(code)
	if code == "" {
		return stop, domain.ValidationError{Field: "code", Msg: "kode stop kosong"}
	}
	if _, err := s.stops().GetByCode(code); err == nil {
		return stop, domain.ConflictError{Resource: "stop", Msg: "kode sudah terdaftar"}
	} else if !domain.IsNotFound(err) {
		return stop, err
	}

	stop, err := s.stops().Insert(models.Stop{Code: code, Name: name, Detail: detail})
	if err != nil {
		return stop, domain.InternalError{Msg: "gagal menyimpan stop", Err: err}
	}

	utils.LogEvent(s.RequestID, "agency", "add_stop", fmt.Sprintf("stop_id=%d code=%s", stop.ID, code))
	return stop, nil
}

// Stops lists the stop catalog.
func (s AgencyService) Stops() ([]models.Stop, error) {
	return s.stops().List()
}
