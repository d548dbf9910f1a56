// Package form holds the intake domain: the three wizard steps, their field
// sets and option lists, per-step validation schemas, and the step state
// machine that accumulates answers into a submission record.
package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Step identifies one of the three wizard pages. Each step carries its own
// validation schema; see schema.go.
type Step int

const (
	StepChild   Step = iota + 1 // child details
	StepNeeds                   // service needs
	StepContact                 // contact info
)

const StepCount = 3

func (s Step) Title() string {
	switch s {
	case StepChild:
		return "Child Details"
	case StepNeeds:
		return "Service Needs"
	case StepContact:
		return "Contact Info"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// Next returns the following step, or false from the last step.
func (s Step) Next() (Step, bool) {
	if s >= StepContact {
		return s, false
	}
	return s + 1, true
}

// Prev returns the preceding step, or false from the first step.
func (s Step) Prev() (Step, bool) {
	if s <= StepChild {
		return s, false
	}
	return s - 1, true
}

// Field keys. These are the wire names shared by the schemas, the error map
// and the TUI.
const (
	FieldChildName    = "childName"
	FieldAge          = "age"
	FieldDiagnosis    = "diagnosis"
	FieldSchoolType   = "schoolType"
	FieldSupportTypes = "supportTypes"
	FieldFrequency    = "frequency"
	FieldRequirements = "requirements"
	FieldParentName   = "parentName"
	FieldEmail        = "email"
	FieldPhone        = "phone"
)

// Labels map field keys to the names shown to the user.
var Labels = map[string]string{
	FieldChildName:    "Child's name",
	FieldAge:          "Age",
	FieldDiagnosis:    "Diagnosis",
	FieldSchoolType:   "School type",
	FieldSupportTypes: "Support types",
	FieldFrequency:    "Frequency",
	FieldRequirements: "Specific requirements",
	FieldParentName:   "Parent/guardian name",
	FieldEmail:        "Email",
	FieldPhone:        "Phone",
}

// Option sets for the enumerated fields.
var (
	Diagnoses = []string{
		"ADHD",
		"Autism Spectrum Disorder",
		"Dyslexia",
		"Dyspraxia",
		"Down Syndrome",
		"Cerebral Palsy",
		"Other",
	}

	SchoolTypes = []string{
		"Public",
		"Private",
		"Special Education",
		"Homeschool",
		"Not Enrolled",
	}

	SupportTypes = []string{
		"Academic Tutoring",
		"Speech Therapy",
		"Occupational Therapy",
		"Behavioral Support",
		"Physical Therapy",
		"Social Skills Group",
	}

	Frequencies = []string{
		"Once a week",
		"Twice a week",
		"Three times a week",
		"Daily",
		"As needed",
	}
)

// Data accumulates validated field values across steps. Values are the
// normalized types produced by ValidateStep (string, int, []string).
type Data map[string]any

// Errors maps a field key to its validation message. It is replaced, never
// merged, on each validation attempt.
type Errors map[string]string

// Submission is the merged record of all nine fields, produced once on
// final submit.
type Submission struct {
	ID           string
	ChildName    string
	Age          int
	Diagnosis    string
	SchoolType   string
	SupportTypes []string
	Frequency    string
	Requirements string
	ParentName   string
	Email        string
	Phone        string
	ReceivedAt   time.Time
}

// NewSubmission builds the final record from accumulated data. It assumes
// every step validated; missing keys simply produce zero values.
func NewSubmission(d Data) Submission {
	return Submission{
		ID:           uuid.NewString(),
		ChildName:    stringValue(d, FieldChildName),
		Age:          intValue(d, FieldAge),
		Diagnosis:    stringValue(d, FieldDiagnosis),
		SchoolType:   stringValue(d, FieldSchoolType),
		SupportTypes: sliceValue(d, FieldSupportTypes),
		Frequency:    stringValue(d, FieldFrequency),
		Requirements: stringValue(d, FieldRequirements),
		ParentName:   stringValue(d, FieldParentName),
		Email:        stringValue(d, FieldEmail),
		Phone:        stringValue(d, FieldPhone),
		ReceivedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func stringValue(d Data, key string) string {
	s, _ := d[key].(string)
	return s
}

func intValue(d Data, key string) int {
	n, _ := d[key].(int)
	return n
}

func sliceValue(d Data, key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// compactValues trims strings, converts string slices to []any for the
// schema layer, and drops empty values so required checks fire on
// untouched inputs.
func compactValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		switch v := v.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				out[k] = s
			}
		case []string:
			if len(v) > 0 {
				elems := make([]any, len(v))
				for i, e := range v {
					elems[i] = e
				}
				out[k] = elems
			}
		case []any:
			if len(v) > 0 {
				out[k] = v
			}
		case nil:
			// skip
		default:
			out[k] = v
		}
	}
	return out
}
