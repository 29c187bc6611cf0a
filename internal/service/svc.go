package service

import (
	"context"
	"errors"
	"fmt"
	"ovhwatch/internal/matcher"
	"ovhwatch/internal/repository"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// HitNotifier sends a notification for a stock hit
type HitNotifier interface {
	NotifyHit(hit matcher.Hit) error
}

// Intervals are the two sleep tiers of the poll loop
type Intervals struct {
	// Idle is slept after a cycle without stock.
	Idle time.Duration
	// Cooldown is slept after a cycle that found stock, leaving time to order
	// and avoiding repeated notifications.
	Cooldown time.Duration
}

// Next returns how long to sleep after a cycle
func (i Intervals) Next(found bool) time.Duration {
	if found {
		return i.Cooldown
	}
	return i.Idle
}

// CycleResult is the outcome of one pass over every region
type CycleResult struct {
	Hits  []matcher.Hit
	Found bool
}

// Options configure a Service
type Options struct {
	Regions           []string
	Fingerprint       matcher.Fingerprint
	Intervals         Intervals
	RequestsPerMinute int
}

// Service polls OVH availability for every region and notifies on stock
type Service struct {
	repo         repository.AvailabilityRepository
	notifier     HitNotifier
	regions      []string
	fingerprint  matcher.Fingerprint
	intervals    Intervals
	limiter      *rate.Limiter
	shutdownChan chan struct{}
	stopOnce     sync.Once
}

// NewService creates a new stock monitoring service
func NewService(repo repository.AvailabilityRepository, n HitNotifier, opts Options) *Service {
	rpm := opts.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}

	return &Service{
		repo:         repo,
		notifier:     n,
		regions:      opts.Regions,
		fingerprint:  opts.Fingerprint,
		intervals:    opts.Intervals,
		limiter:      rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
		shutdownChan: make(chan struct{}),
	}
}

// CheckRegion looks for the watched configuration in one region and sends a
// notification on the first purchasable datacenter. Errors are logged and
// reported as no stock.
func (s *Service) CheckRegion(ctx context.Context, planCode string) (matcher.Hit, bool) {
	logger := log.WithField("plan_code", planCode)

	if err := s.limiter.Wait(ctx); err != nil {
		logger.Warnf("Rate limit wait aborted: %v", err)
		return matcher.Hit{}, false
	}

	records, err := s.repo.FetchAvailabilities(ctx, planCode)
	if err != nil {
		var statusErr *repository.StatusError
		if errors.As(err, &statusErr) {
			logger.Warnf("Unexpected API response: %d", statusErr.StatusCode)
		} else {
			logger.Errorf("Request error: %v", err)
		}
		return matcher.Hit{}, false
	}

	hit, found := matcher.Find(planCode, records, s.fingerprint)
	if !found {
		logger.Debugf("No stock among %d variants", len(records))
		return matcher.Hit{}, false
	}

	logger.WithFields(log.Fields{
		"datacenter":   hit.Datacenter,
		"availability": hit.Availability,
	}).Info("Stock found")

	if err := s.notifier.NotifyHit(hit); err != nil {
		logger.Errorf("Error sending notification: %v", err)
	} else {
		logger.Info("Notification sent")
	}

	return hit, true
}

// RunCycle checks every region in order, one request at a time
func (s *Service) RunCycle(ctx context.Context) CycleResult {
	var result CycleResult
	for _, region := range s.regions {
		if ctx.Err() != nil {
			break
		}
		if hit, found := s.CheckRegion(ctx, region); found {
			result.Hits = append(result.Hits, hit)
			result.Found = true
		}
	}
	return result
}

// Start runs poll cycles until the context is cancelled or Stop is called
func (s *Service) Start(ctx context.Context) error {
	log.Info("Starting OVH stock monitor...")
	log.Infof("Regions: %s", strings.Join(s.regions, ", "))
	log.Infof("Target: %s (%s, %s)", s.fingerprint.Label, s.fingerprint.Memory, s.fingerprint.Storage)
	log.Infof("Poll interval: %v, after stock: %v", s.intervals.Idle, s.intervals.Cooldown)

	if len(s.regions) == 0 {
		return fmt.Errorf("no regions to monitor")
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			log.Info("Scanning regions...")
			result := s.RunCycle(ctx)
			wait := s.intervals.Next(result.Found)
			if result.Found {
				log.Infof("Stock found, pausing for %v", wait)
			}
			timer.Reset(wait)
		case <-ctx.Done():
			log.Info("Context cancelled, stopping service...")
			return nil
		case <-s.shutdownChan:
			log.Info("Shutdown requested, stopping service...")
			return nil
		}
	}
}

// Stop gracefully stops the service
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		close(s.shutdownChan)
	})
}
