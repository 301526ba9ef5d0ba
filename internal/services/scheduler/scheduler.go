// Package services implements the daily expiration scan: it walks all
// services, computes the remaining days for each and publishes a queue
// message for every service that crossed the notification threshold.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Aaryashkc/Client-domain-management/internal/lib/days"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/rabbitmq"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/sl"
	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// ServiceRepository defines the storage read the scanner needs.
type ServiceRepository interface {
	// ListServiceInfos returns all services with display fields resolved.
	ListServiceInfos(ctx context.Context) ([]*models.ServiceInfo, error)
}

// Publisher publishes queue messages for the sender.
type Publisher interface {
	Publish(exchange, routingKey string, message any) error
}

// SchedulerService runs the expiration scan on a daily cadence.
//
// Selection is an exact-day match: a service is picked up on the one day
// its remaining time equals the threshold, so repeated daily runs cannot
// double-send. A scan skipped that day (process down) is not backfilled.
type SchedulerService struct {
	repo      ServiceRepository
	publisher Publisher
	log       *slog.Logger
	threshold int
	now       func() time.Time
}

// NewSchedulerService creates a new SchedulerService with the given
// notification threshold in days.
func NewSchedulerService(repo ServiceRepository, publisher Publisher, log *slog.Logger, threshold int) *SchedulerService {
	return &SchedulerService{
		repo:      repo,
		publisher: publisher,
		log:       log,
		threshold: threshold,
		now:       time.Now,
	}
}

// RunDaily blocks, firing the scan once per calendar day at sendTime
// ("15:04" local time), until ctx is cancelled.
func (s *SchedulerService) RunDaily(ctx context.Context, sendTime string) error {
	hour, minute, err := parseSendTime(sendTime)
	if err != nil {
		return err
	}

	s.log.Info("expiration check scheduler initialized", slog.String("send_time", sendTime))

	for {
		next := nextFire(s.now(), hour, minute)
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			s.runScan(ctx)
		}
	}
}

// runScan enumerates all services and publishes a message for each one
// whose remaining days equal the threshold. A store read failure aborts
// the whole run; a publish failure for one service is logged and the
// loop continues with the rest.
func (s *SchedulerService) runScan(ctx context.Context) {
	s.log.Info("running daily service expiration check")

	infos, err := s.repo.ListServiceInfos(ctx)
	if err != nil {
		s.log.Error("failed to list services, aborting scan", sl.Err(err))
		return
	}

	now := s.now()
	var published int
	for _, info := range infos {
		daysRemaining := days.Until(info.EndDate, now)
		if daysRemaining != s.threshold {
			continue
		}

		message := models.ExpiringService{
			ServiceID:   info.ID,
			ServiceName: info.ServiceName,
			DaysLeft:    daysRemaining,
		}
		err := s.publisher.Publish(rabbitmq.NotificationsExchange, rabbitmq.ExpiringRoutingKey, message)
		if err != nil {
			s.log.Error("failed to publish expiring service",
				slog.String("service_id", info.ID), sl.Err(err))
			continue
		}
		published++
	}

	s.log.Info("expiration check completed",
		slog.Int("scanned", len(infos)), slog.Int("published", published))
}

// nextFire returns the next time the clock reads hour:minute, today if
// that is still ahead, otherwise tomorrow.
func nextFire(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func parseSendTime(sendTime string) (hour, minute int, err error) {
	parts := strings.SplitN(sendTime, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid send time %q, want HH:MM", sendTime)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid send time %q, want HH:MM", sendTime)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid send time %q, want HH:MM", sendTime)
	}
	return hour, minute, nil
}
