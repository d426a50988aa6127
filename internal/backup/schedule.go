package backup

import (
	"context"
	"errors"
	"fmt"
	"hotelsphere/shared/timezone"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	DefaultSchedule = "0 2 * * *"

	archiveTimeout = 5 * time.Minute
)

var errNilService = errors.New("backup service is required")

// Scheduler runs Archive on a cron schedule in the application timezone.
type Scheduler struct {
	cron    *cron.Cron
	service Service
}

// NewScheduler registers the archive job. An empty spec uses DefaultSchedule.
func NewScheduler(service Service, spec string) (*Scheduler, error) {
	if service == nil {
		return nil, errNilService
	}

	if spec == "" {
		spec = DefaultSchedule
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(timezone.GetLocation())),
		service: service,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}

	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	if _, err := s.service.Archive(ctx); err != nil {
		log.Error().Err(err).Msg("scheduled backup failed")
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("backup scheduler started")
}

// Stop waits for a running archive to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("backup scheduler stopped before running job finished")
	}
}

// Next reports when the archive job runs next. Zero before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}

	return entries[0].Next
}
