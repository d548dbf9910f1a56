// Package service carries the submission handoff: the merged intake record
// leaves the wizard through a SubmitHandler implementation from here.
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/nell/careintake/internal/database/repository"
	"github.com/nell/careintake/internal/form"
)

// LogSubmitter writes the merged record to a logger. This is the default
// handoff; any real transport is out of scope.
type LogSubmitter struct {
	Logger *log.Logger
}

func (s *LogSubmitter) Submit(_ context.Context, sub form.Submission) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf(
		"intake submission %s: child=%q age=%d diagnosis=%q school=%q support=%q frequency=%q requirements=%q parent=%q email=%q phone=%q",
		sub.ID, sub.ChildName, sub.Age, sub.Diagnosis, sub.SchoolType,
		strings.Join(sub.SupportTypes, ", "), sub.Frequency, sub.Requirements,
		sub.ParentName, sub.Email, sub.Phone)
	return nil
}

// StoreSubmitter persists the record to the submissions table.
type StoreSubmitter struct {
	Submissions *repository.SubmissionRepo
}

func (s *StoreSubmitter) Submit(ctx context.Context, sub form.Submission) error {
	return s.Submissions.Insert(ctx, sub)
}

// MultiSubmitter fans the record out to every handler so the diagnostic log
// happens even when a store is configured. All handlers run; errors are
// joined.
type MultiSubmitter struct {
	Handlers []form.SubmitHandler
}

func (s *MultiSubmitter) Submit(ctx context.Context, sub form.Submission) error {
	var errs []error
	for _, h := range s.Handlers {
		if err := h.Submit(ctx, sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
