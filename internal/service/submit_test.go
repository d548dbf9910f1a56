package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nell/careintake/internal/database"
	"github.com/nell/careintake/internal/database/repository"
	"github.com/nell/careintake/internal/form"
)

type captureHandler struct {
	subs []form.Submission
	err  error
}

func (c *captureHandler) Submit(_ context.Context, sub form.Submission) error {
	c.subs = append(c.subs, sub)
	return c.err
}

func sampleSubmission() form.Submission {
	return form.Submission{
		ID:           "sub-1",
		ChildName:    "Alex",
		Age:          10,
		Diagnosis:    "ADHD",
		SchoolType:   "Public",
		SupportTypes: []string{"Academic Tutoring"},
		Frequency:    "Once a week",
		ParentName:   "Sam",
		Email:        "sam@example.com",
		Phone:        "1234567890",
		ReceivedAt:   time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
	}
}

func TestLogSubmitter(t *testing.T) {
	var buf bytes.Buffer
	s := &LogSubmitter{Logger: log.New(&buf, "", 0)}
	require.NoError(t, s.Submit(context.Background(), sampleSubmission()))

	out := buf.String()
	require.Contains(t, out, "sub-1")
	require.Contains(t, out, `child="Alex"`)
	require.Contains(t, out, "age=10")
	require.Contains(t, out, `email="sam@example.com"`)
}

func TestStoreSubmitter(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	repo := repository.NewSubmissionRepo(db)
	s := &StoreSubmitter{Submissions: repo}
	require.NoError(t, s.Submit(ctx, sampleSubmission()))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestMultiSubmitterFanOut(t *testing.T) {
	a := &captureHandler{}
	b := &captureHandler{}
	m := &MultiSubmitter{Handlers: []form.SubmitHandler{a, b}}

	require.NoError(t, m.Submit(context.Background(), sampleSubmission()))
	require.Len(t, a.subs, 1)
	require.Len(t, b.subs, 1)
}

func TestMultiSubmitterRunsAllOnError(t *testing.T) {
	a := &captureHandler{err: errors.New("boom")}
	b := &captureHandler{}
	m := &MultiSubmitter{Handlers: []form.SubmitHandler{a, b}}

	err := m.Submit(context.Background(), sampleSubmission())
	require.Error(t, err)
	require.Len(t, b.subs, 1, "later handlers must still run")
}
