package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nell/careintake/internal/database"
	"github.com/nell/careintake/internal/database/repository"
	"github.com/nell/careintake/internal/form"
	"github.com/nell/careintake/internal/notify"
	"github.com/nell/careintake/internal/service"
)

// runValidation executes a non-TUI end-to-end path against a temporary DB:
// walk a known-good record through all three steps and check it lands in
// the store.
func runValidation() error {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "careintake-validate-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	db, err := database.Open(filepath.Join(dir, "validate.db"))
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	repo := repository.NewSubmissionRepo(db)
	wizard := form.NewWizard(&notify.LogNotifier{}, &service.MultiSubmitter{
		Handlers: []form.SubmitHandler{
			&service.LogSubmitter{},
			&service.StoreSubmitter{Submissions: repo},
		},
	})

	steps := []map[string]any{
		{
			form.FieldChildName:  "Alex",
			form.FieldAge:        "10",
			form.FieldDiagnosis:  "ADHD",
			form.FieldSchoolType: "Public",
		},
		{
			form.FieldSupportTypes: []string{"Academic Tutoring"},
			form.FieldFrequency:    "Once a week",
			form.FieldRequirements: "",
		},
		{
			form.FieldParentName: "Sam",
			form.FieldEmail:      "sam@example.com",
			form.FieldPhone:      "1234567890",
		},
	}
	for i, values := range steps {
		if !wizard.SubmitStep(ctx, values) {
			return fmt.Errorf("step %d rejected: %v", i+1, wizard.Errors())
		}
	}
	if !wizard.Submitted() {
		return fmt.Errorf("wizard did not reach submitted state")
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count submissions: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("stored submissions = %d, want 1", n)
	}

	subs, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list submissions: %w", err)
	}
	s := subs[0]
	if s.ChildName != "Alex" || s.Age != 10 || s.Email != "sam@example.com" {
		return fmt.Errorf("stored record mismatch: %+v", s)
	}
	return nil
}
