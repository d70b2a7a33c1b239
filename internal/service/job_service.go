package service

import (
	"time"

	"smarak/internal/repository"

	"github.com/rs/zerolog"
)

// JobService runs the periodic maintenance tasks.
type JobService struct {
	repo repository.ParkingRepository
	ttl  time.Duration
	log  *zerolog.Logger
}

func NewJobService(repo repository.ParkingRepository, ttl time.Duration, log *zerolog.Logger) *JobService {
	return &JobService{repo: repo, ttl: ttl, log: log}
}

// PurgeStalePendingReservations deletes parking reservations that never
// completed payment within the TTL, releasing their slots for the date.
func (s *JobService) PurgeStalePendingReservations() error {
	cutoff := time.Now().UTC().Add(-s.ttl)
	purged, err := s.repo.DeleteStalePending(cutoff)
	if err != nil {
		s.log.Error().Err(err).Msg("purging stale reservations failed")
		return err
	}
	if purged > 0 {
		s.log.Info().Int64("purged", purged).Msg("stale pending reservations released")
	}
	return nil
}
