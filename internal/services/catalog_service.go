package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
	"brs-backend/internal/repositories"
	"brs-backend/internal/utils"
)

// CatalogService owns the route catalog: directed trips between stops.
type CatalogService struct {
	StopRepo   repositories.StopRepo
	AgencyRepo repositories.AgencyRepo
	TripRepo   repositories.TripRepo
	DB         *sql.DB
	RequestID  string
}

func (s CatalogService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CatalogService) stops() repositories.StopRepo {
	if s.StopRepo.DB != nil {
		return s.StopRepo
	}
	return repositories.StopRepo{DB: s.db()}
}

func (s CatalogService) agencies() repositories.AgencyRepo {
	if s.AgencyRepo.DB != nil {
		return s.AgencyRepo
	}
	return repositories.AgencyRepo{DB: s.db()}
}

func (s CatalogService) trips() repositories.TripRepo {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepo{DB: s.db()}
}

type CreateRouteInput struct {
	SourceStopCode string `json:"source_stop"`
	DestStopCode   string `json:"destination_stop"`
	CabCode        string `json:"cab_code"`
	AgencyCode     string `json:"agency_code"`
	Fare           int64  `json:"fare"`
	JourneyTime    int    `json:"journey_time"`
}

// CreateRoutePair registers a route and its reverse as one unit. Both
// directions share cab, agency, fare and journey time; the pair insert is
// transactional, so a half-created pair is never observable.
func (s CatalogService) CreateRoutePair(in CreateRouteInput) (models.Trip, models.Trip, error) {
	var to, fro models.Trip

	src := strings.TrimSpace(in.SourceStopCode)
	dst := strings.TrimSpace(in.DestStopCode)
	if strings.EqualFold(src, dst) {
		return to, fro, domain.ValidationError{Field: "destination_stop", Msg: "stop asal dan tujuan tidak boleh sama"}
	}

	sourceStop, err := s.stops().GetByCode(src)
	if err != nil {
		return to, fro, err
	}
	destStop, err := s.stops().GetByCode(dst)
	if err != nil {
		return to, fro, err
	}
	agency, err := s.agencies().GetByCode(in.AgencyCode)
	if err != nil {
		return to, fro, err
	}
	cab, err := s.agencies().GetCabByCode(in.CabCode)
	if err != nil {
		return to, fro, err
	}

	to = models.Trip{
		Fare:         in.Fare,
		JourneyTime:  in.JourneyTime,
		SourceStopID: sourceStop.ID,
		DestStopID:   destStop.ID,
		CabID:        cab.ID,
		AgencyID:     agency.ID,
	}
	fro = to
	fro.SourceStopID, fro.DestStopID = to.DestStopID, to.SourceStopID

	to, fro, err = s.trips().InsertPair(to, fro)
	if err != nil {
		return to, fro, err
	}

	utils.LogEvent(s.RequestID, "catalog", "create_route_pair",
		fmt.Sprintf("to=%d fro=%d %s<->%s", to.ID, fro.ID, src, dst))
	return to, fro, nil
}

// RoutesBetween lists directed trips from source to destination stop.
// Multiple agencies may serve the same pair; an empty result is not an error.
func (s CatalogService) RoutesBetween(sourceStopCode, destStopCode string) ([]models.Trip, error) {
	sourceStop, err := s.stops().GetByCode(sourceStopCode)
	if err != nil {
		return nil, err
	}
	destStop, err := s.stops().GetByCode(destStopCode)
	if err != nil {
		return nil, err
	}
	return s.trips().ListBetween(sourceStop.ID, destStop.ID)
}

func (s CatalogService) RouteByID(id int64) (models.Trip, error) {
	return s.trips().GetByID(id)
}

func (s CatalogService) AgencyTrips(agencyCode string) ([]models.Trip, error) {
	agency, err := s.agencies().GetByCode(agencyCode)
	if err != nil {
		return nil, err
	}
	return s.trips().ListByAgency(agency.ID)
}
