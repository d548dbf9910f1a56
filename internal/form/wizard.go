package form

import (
	"context"
	"fmt"

	"github.com/nell/careintake/internal/notify"
)

// SubmitHandler receives the merged record on final submit. The concrete
// implementations live in internal/service.
type SubmitHandler interface {
	Submit(ctx context.Context, sub Submission) error
}

// Wizard is the step state machine: Step1 -> Step2 -> Step3 -> Submitted.
// It owns the accumulated data for its lifetime and never leaves the
// submitted state. All methods are synchronous and single-threaded.
type Wizard struct {
	step      Step
	data      Data
	errs      Errors
	submitted bool
	notifier  notify.Notifier
	submit    SubmitHandler
}

func NewWizard(notifier notify.Notifier, submit SubmitHandler) *Wizard {
	return &Wizard{
		step:     StepChild,
		data:     Data{},
		notifier: notifier,
		submit:   submit,
	}
}

func (w *Wizard) Step() Step      { return w.step }
func (w *Wizard) Submitted() bool { return w.submitted }

// Errors returns the error map from the most recent failed validation.
func (w *Wizard) Errors() Errors { return w.errs }

// Value returns the accumulated value for a field key, if any.
func (w *Wizard) Value(key string) (any, bool) {
	v, ok := w.data[key]
	return v, ok
}

// SubmitStep validates the current step's values in a single pass. On
// success it merges the clean fields forward and advances (or finalizes on
// the last step); on failure it stays put, replaces the error map, and
// emits an error notification. Reports whether the step transitioned.
func (w *Wizard) SubmitStep(ctx context.Context, values map[string]any) bool {
	if w.submitted {
		return false
	}
	clean, errs := ValidateStep(ctx, w.step, values)
	if len(errs) > 0 {
		w.errs = errs
		w.notifier.Error("Please fix the errors before submitting")
		return false
	}
	w.errs = nil
	for k, v := range clean {
		w.data[k] = v
	}

	done := w.step
	if next, ok := w.step.Next(); ok {
		w.step = next
		w.notifier.Success(fmt.Sprintf("%s saved", done.Title()))
		return true
	}

	sub := NewSubmission(w.data)
	if err := w.submit.Submit(ctx, sub); err != nil {
		w.errs = Errors{"_form": "Submission failed: " + err.Error()}
		w.notifier.Error("Submission failed, please try again")
		return false
	}
	w.submitted = true
	w.notifier.Success("Request submitted. Thank you!")
	return true
}

// Back retreats one step without validating or clearing accumulated data.
// No-op on the first step and after submission.
func (w *Wizard) Back() bool {
	if w.submitted {
		return false
	}
	prev, ok := w.step.Prev()
	if !ok {
		return false
	}
	w.step = prev
	w.errs = nil
	w.notifier.Info("Back to " + prev.Title())
	return true
}
