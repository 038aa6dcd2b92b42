package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain/models"
	"brs-backend/internal/repositories"
	"brs-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService reads the ticket ledger and renders e-tickets.
type TicketService struct {
	TicketRepo   repositories.TicketRepo
	ScheduleRepo repositories.ScheduleRepo
	TripRepo     repositories.TripRepo
	StopRepo     repositories.StopRepo
	AgencyRepo   repositories.AgencyRepo
	UserRepo     repositories.UserRepo
	DB           *sql.DB
	RequestID    string
	Loader       func(ticketID int64) (ticketDocData, error)
}

type ticketDocData struct {
	TicketID      int64
	SeatNumber    int
	PassengerName string
	JourneyDate   string
	SourceStop    string
	DestStop      string
	AgencyName    string
	CabCode       string
	Fare          int64
}

func (s TicketService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TicketService) ticketRepo() repositories.TicketRepo {
	if s.TicketRepo.DB != nil {
		return s.TicketRepo
	}
	return repositories.TicketRepo{DB: s.db()}
}

// ByPassenger lists the passenger's issued tickets, oldest first.
func (s TicketService) ByPassenger(passengerID int64) ([]models.Ticket, error) {
	return s.ticketRepo().ListByPassenger(passengerID)
}

func (s TicketService) Get(ticketID int64) (models.Ticket, error) {
	return s.ticketRepo().GetByID(ticketID)
}

// GenerateETicket renders the ticket as a PDF, returning bytes and filename.
func (s TicketService) GenerateETicket(ticketID int64) ([]byte, string, error) {
	data, err := s.loadTicketDocData(ticketID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "tickets", "generate_eticket", fmt.Sprintf("ticket_id=%d", ticketID))
	return buildETicketPDF(data)
}

func (s TicketService) loadTicketDocData(ticketID int64) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(ticketID)
	}
	var out ticketDocData

	db := s.db()
	ticket, err := s.ticketRepo().GetByID(ticketID)
	if err != nil {
		return out, err
	}
	out.TicketID = ticket.ID
	out.SeatNumber = ticket.SeatNumber
	out.JourneyDate = ticket.JourneyDate

	if u, err := (repositories.UserRepo{DB: db}).GetByID(ticket.PassengerID); err == nil {
		out.PassengerName = u.Name
	}

	sched, err := (repositories.ScheduleRepo{DB: db}).GetByID(ticket.ScheduleID)
	if err != nil {
		return out, err
	}
	trip, err := (repositories.TripRepo{DB: db}).GetByID(sched.TripID)
	if err != nil {
		return out, err
	}
	out.Fare = trip.Fare

	stopRepo := repositories.StopRepo{DB: db}
	if src, err := stopRepo.GetByID(trip.SourceStopID); err == nil {
		out.SourceStop = src.Name
	}
	if dst, err := stopRepo.GetByID(trip.DestStopID); err == nil {
		out.DestStop = dst.Name
	}
	agencyRepo := repositories.AgencyRepo{DB: db}
	if cab, err := agencyRepo.GetCabByID(trip.CabID); err == nil {
		out.CabCode = cab.Code
	}
	if agency, err := agencyRepo.GetByID(trip.AgencyID); err == nil {
		out.AgencyName = agency.Name
	}
	return out, nil
}

func buildETicketPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Nama Penumpang : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Seat           : %d", d.SeatNumber),
		fmt.Sprintf("Rute           : %s -> %s", safe(d.SourceStop, "-"), safe(d.DestStop, "-")),
		fmt.Sprintf("Tanggal        : %s", safe(d.JourneyDate, "-")),
		fmt.Sprintf("Agency         : %s", safe(d.AgencyName, "-")),
		fmt.Sprintf("Kendaraan      : %s", safe(d.CabCode, "-")),
		fmt.Sprintf("Harga          : %d", d.Fare),
		fmt.Sprintf("Kode Ticket    : TCK-%d", d.TicketID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Catatan: E-ticket ini berlaku untuk 1 penumpang (1 seat). Harap tunjukkan saat keberangkatan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d.pdf", d.TicketID)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
