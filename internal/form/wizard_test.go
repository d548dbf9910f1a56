package form

import (
	"context"
	"errors"
	"testing"

	"github.com/nell/careintake/internal/notify"
)

type captureSubmit struct {
	subs []Submission
	err  error
}

func (c *captureSubmit) Submit(_ context.Context, sub Submission) error {
	if c.err != nil {
		return c.err
	}
	c.subs = append(c.subs, sub)
	return nil
}

func lastNotice(t *testing.T, rec *notify.Recorder) notify.Notice {
	t.Helper()
	if len(rec.Notices) == 0 {
		t.Fatal("no notices recorded")
	}
	return rec.Notices[len(rec.Notices)-1]
}

func TestWizardHappyPath(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	capture := &captureSubmit{}
	w := NewWizard(rec, capture)

	if !w.SubmitStep(ctx, validChildValues()) {
		t.Fatalf("step 1 rejected: %v", w.Errors())
	}
	if w.Step() != StepNeeds {
		t.Fatalf("step = %v, want StepNeeds", w.Step())
	}
	if n := lastNotice(t, rec); n.Level != notify.LevelSuccess || n.Message != "Child Details saved" {
		t.Fatalf("notice = %+v", n)
	}

	if !w.SubmitStep(ctx, validNeedsValues()) {
		t.Fatalf("step 2 rejected: %v", w.Errors())
	}
	if !w.SubmitStep(ctx, validContactValues()) {
		t.Fatalf("step 3 rejected: %v", w.Errors())
	}

	if !w.Submitted() {
		t.Fatal("wizard not submitted")
	}
	if n := lastNotice(t, rec); n.Message != "Request submitted. Thank you!" {
		t.Fatalf("notice = %+v", n)
	}

	if len(capture.subs) != 1 {
		t.Fatalf("submissions = %d, want 1", len(capture.subs))
	}
	sub := capture.subs[0]
	if sub.ID == "" {
		t.Fatal("submission has no id")
	}
	if sub.ChildName != "Alex" || sub.Age != 10 || sub.Diagnosis != "ADHD" ||
		sub.SchoolType != "Public" || sub.Frequency != "Once a week" ||
		sub.ParentName != "Sam" || sub.Email != "sam@example.com" ||
		sub.Phone != "1234567890" || sub.Requirements != "" {
		t.Fatalf("merged record mismatch: %+v", sub)
	}
	if len(sub.SupportTypes) != 1 || sub.SupportTypes[0] != "Academic Tutoring" {
		t.Fatalf("supportTypes = %v", sub.SupportTypes)
	}

	// submitted is terminal
	if w.SubmitStep(ctx, validContactValues()) {
		t.Fatal("SubmitStep succeeded after submission")
	}
	if w.Back() {
		t.Fatal("Back succeeded after submission")
	}
	if len(capture.subs) != 1 {
		t.Fatalf("submissions = %d after re-submit", len(capture.subs))
	}
}

func TestWizardInvalidStepStaysPut(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	w := NewWizard(rec, &captureSubmit{})

	if w.SubmitStep(ctx, map[string]any{}) {
		t.Fatal("empty step accepted")
	}
	if w.Step() != StepChild {
		t.Fatalf("step = %v, want StepChild", w.Step())
	}
	if len(w.Errors()) == 0 {
		t.Fatal("no errors recorded")
	}
	n := lastNotice(t, rec)
	if n.Level != notify.LevelError || n.Message != "Please fix the errors before submitting" {
		t.Fatalf("notice = %+v", n)
	}
}

func TestWizardBackPreservesData(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	w := NewWizard(rec, &captureSubmit{})

	if !w.SubmitStep(ctx, validChildValues()) {
		t.Fatalf("step 1 rejected: %v", w.Errors())
	}
	if !w.Back() {
		t.Fatal("Back failed from step 2")
	}
	if w.Step() != StepChild {
		t.Fatalf("step = %v, want StepChild", w.Step())
	}
	if n := lastNotice(t, rec); n.Level != notify.LevelInfo || n.Message != "Back to Child Details" {
		t.Fatalf("notice = %+v", n)
	}
	if v, ok := w.Value(FieldChildName); !ok || v != "Alex" {
		t.Fatalf("childName after back = %v (ok=%v)", v, ok)
	}
}

func TestWizardBackOnFirstStep(t *testing.T) {
	rec := &notify.Recorder{}
	w := NewWizard(rec, &captureSubmit{})
	if w.Back() {
		t.Fatal("Back succeeded on first step")
	}
	if len(rec.Notices) != 0 {
		t.Fatalf("notices = %v", rec.Notices)
	}
}

func TestWizardSubmitFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	capture := &captureSubmit{err: errors.New("store down")}
	w := NewWizard(rec, capture)

	w.SubmitStep(ctx, validChildValues())
	w.SubmitStep(ctx, validNeedsValues())
	if w.SubmitStep(ctx, validContactValues()) {
		t.Fatal("final submit succeeded despite handler error")
	}
	if w.Submitted() {
		t.Fatal("wizard submitted despite handler error")
	}
	if w.Step() != StepContact {
		t.Fatalf("step = %v, want StepContact", w.Step())
	}
	if w.Errors()["_form"] == "" {
		t.Fatal("no form-level error recorded")
	}

	capture.err = nil
	if !w.SubmitStep(ctx, validContactValues()) {
		t.Fatalf("retry rejected: %v", w.Errors())
	}
	if !w.Submitted() || len(capture.subs) != 1 {
		t.Fatalf("retry did not finalize: submitted=%v subs=%d", w.Submitted(), len(capture.subs))
	}
}
