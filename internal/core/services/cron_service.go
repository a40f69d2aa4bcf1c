package services

import (
	"context"
	"log"
	"time"

	"fleetease/internal/adapters/persistence/repositories"
	"fleetease/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// CronService runs the scheduled background jobs:
//   - GPS drift every 30s so the map has live-looking data in demo fleets
//   - nightly sweep closing reservations that were returned the day before
type CronService struct {
	cron            *cron.Cron
	gpsService      *GPSService
	reservationRepo repositories.ReservationRepository
}

// NewCronService creates a new cron service
func NewCronService(gpsService *GPSService, reservationRepo repositories.ReservationRepository) *CronService {
	return &CronService{
		cron:            cron.New(),
		gpsService:      gpsService,
		reservationRepo: reservationRepo,
	}
}

// Start registers and starts all scheduled jobs
func (s *CronService) Start() {
	s.cron.AddFunc("@every 30s", s.driftGPS)
	s.cron.AddFunc("0 3 * * *", s.closeReturnedReservations)
	s.cron.Start()
	log.Println("✅ Cron service started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("✅ Cron service stopped")
}

func (s *CronService) driftGPS() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.gpsService.DriftPositions(ctx); err != nil {
		log.Printf("⚠️ GPS drift job failed: %v", err)
	}
}

// closeReturnedReservations moves returned reservations to closed overnight.
// The app routes both to the read-only detail screen, so this only affects
// reporting.
func (s *CronService) closeReturnedReservations() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	reservations, err := s.reservationRepo.ListByStatus(ctx, string(domain.StatusReturned))
	if err != nil {
		log.Printf("⚠️ Close sweep failed to list reservations: %v", err)
		return
	}

	closed := 0
	for _, r := range reservations {
		if _, err := domain.Transition(domain.StatusReturned, domain.StatusClosed); err != nil {
			continue
		}
		if err := s.reservationRepo.UpdateStatus(ctx, r.ID, string(domain.StatusClosed)); err != nil {
			log.Printf("⚠️ Close sweep failed for reservation %s: %v", r.ID, err)
			continue
		}
		closed++
	}

	if closed > 0 {
		log.Printf("✅ Close sweep: %d reservation(s) closed", closed)
	}
}
