package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/semmidev/s3sweep/internal/domain"
)

type Logger interface {
	Infof(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

// Sweep deletes every object under the configured path specs whose age
// exceeds the threshold. Path specs are processed in caller order, objects in
// listing order, and the first error aborts the whole run.
type Sweep struct {
	storage   domain.Storage
	notifier  domain.Notifier
	logger    Logger
	pathSpecs []string
	threshold time.Duration
	dryRun    bool

	// now is sampled once per object comparison, matching the behavior of
	// the cron tools this replaces. Overridable in tests.
	now func() time.Time
}

func NewSweep(
	storage domain.Storage,
	notifier domain.Notifier,
	logger Logger,
	pathSpecs []string,
	threshold time.Duration,
	dryRun bool,
) *Sweep {
	return &Sweep{
		storage:   storage,
		notifier:  notifier,
		logger:    logger,
		pathSpecs: pathSpecs,
		threshold: threshold,
		dryRun:    dryRun,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (uc *Sweep) Execute(ctx context.Context) error {
	start := time.Now()
	scanned, removed := 0, 0

	for _, spec := range uc.pathSpecs {
		uc.logger.Infof("Deleting all objects in %s older than %s", spec, uc.threshold)

		loc, err := uc.storage.Resolve(spec)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", spec, err)
		}

		objects, err := uc.storage.List(ctx, loc)
		if err != nil {
			return fmt.Errorf("list %s: %w", spec, err)
		}

		for _, obj := range objects {
			scanned++

			lastModified, err := time.Parse(time.RFC3339, obj.LastModified)
			if err != nil {
				return fmt.Errorf("parse last modified of %s: %w", obj.Key, err)
			}

			age := uc.now().Sub(lastModified)
			if age <= uc.threshold {
				continue
			}

			uc.logger.Infof("Deleting s3://%s/%s; is %s old", loc.Bucket, obj.Key, age)
			if !uc.dryRun {
				if err := uc.storage.Delete(ctx, loc, obj.Key); err != nil {
					return fmt.Errorf("delete %s: %w", obj.Key, err)
				}
			}
			removed++
		}
	}

	uc.logger.Infof("Sweep completed in %s: scanned %d object(s), removed %d",
		time.Since(start).Round(time.Second), scanned, removed)

	uc.sendSummary(ctx, scanned, removed)
	return nil
}

func (uc *Sweep) sendSummary(ctx context.Context, scanned, removed int) {
	if uc.notifier == nil {
		return
	}

	verb := "Removed"
	if uc.dryRun {
		verb = "Would remove"
	}
	message := fmt.Sprintf(
		"🧹 s3sweep finished\n\nPaths: %d\nThreshold: %s\nScanned: %d\n%s: %d",
		len(uc.pathSpecs), uc.threshold, scanned, verb, removed,
	)

	if err := uc.notifier.Notify(ctx, message); err != nil {
		uc.logger.Warnf("Failed to send summary notification: %v", err)
	}
}
