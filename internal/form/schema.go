package form

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"
)

// One schema per step. The step tag selects the variant; there is no shared
// schema with conditional branches.
var (
	childSchema   = buildChildSchema()
	needsSchema   = buildNeedsSchema()
	contactSchema = buildContactSchema()
)

func schemaFor(step Step) goskema.Schema[map[string]any] {
	switch step {
	case StepNeeds:
		return needsSchema
	case StepContact:
		return contactSchema
	default:
		return childSchema
	}
}

// ValidateStep runs the schema for the given step over raw input values.
// It is a single pass: the returned clean data carries normalized types
// (age as int, support types as []string) and nothing re-validates behind
// it. On failure the returned Errors replaces any previous error map.
func ValidateStep(ctx context.Context, step Step, values map[string]any) (Data, Errors) {
	parsed, err := schemaFor(step).Parse(ctx, compactValues(values))
	if err != nil {
		if iss, ok := goskema.AsIssues(err); ok {
			return nil, errorsFromIssues(iss)
		}
		return nil, Errors{"_form": err.Error()}
	}
	return normalize(step, parsed), nil
}

func buildChildSchema() goskema.Schema[map[string]any] {
	return g.Object().
		Field(FieldChildName, g.StringOf[string]()).
		Field(FieldAge, g.StringOf[string]()).
		Field(FieldDiagnosis, g.StringOf[string]()).
		Field(FieldSchoolType, g.StringOf[string]()).
		Require(FieldChildName, FieldAge, FieldDiagnosis, FieldSchoolType).
		UnknownStrict().
		Refine("ageRange", ageRule).
		Refine("diagnosisOption", optionRule(FieldDiagnosis, Diagnoses)).
		Refine("schoolTypeOption", optionRule(FieldSchoolType, SchoolTypes)).
		MustBuild()
}

func buildNeedsSchema() goskema.Schema[map[string]any] {
	return g.Object().
		Field(FieldSupportTypes, g.ArrayOfSchema[string](g.Array(g.String()).Min(1))).
		Field(FieldFrequency, g.StringOf[string]()).
		Field(FieldRequirements, g.StringOf[string]()).
		Require(FieldSupportTypes, FieldFrequency).
		UnknownStrict().
		Refine("supportTypeOptions", supportTypesRule).
		Refine("frequencyOption", optionRule(FieldFrequency, Frequencies)).
		MustBuild()
}

func buildContactSchema() goskema.Schema[map[string]any] {
	return g.Object().
		Field(FieldParentName, g.StringOf[string]()).
		Field(FieldEmail, g.StringOf[string]()).
		Field(FieldPhone, g.StringOf[string]()).
		Require(FieldParentName, FieldEmail, FieldPhone).
		UnknownStrict().
		Refine("emailFormat", emailRule).
		Refine("phoneFormat", phoneRule).
		MustBuild()
}

func ageRule(_ context.Context, v map[string]any) error {
	raw, ok := v[FieldAge].(string)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return issue(FieldAge, goskema.CodeParseError, "Age must be a whole number")
	}
	if n < 1 {
		return issue(FieldAge, goskema.CodeTooSmall, "Age must be a positive number")
	}
	if n > 18 {
		return issue(FieldAge, goskema.CodeTooBig, "Age must be 18 or younger")
	}
	return nil
}

// optionRule checks membership in an enumerated set, adding a nearest-match
// hint when the value looks like a typo of a real option.
func optionRule(field string, options []string) func(context.Context, map[string]any) error {
	return func(_ context.Context, v map[string]any) error {
		val, ok := v[field].(string)
		if !ok {
			return nil
		}
		for _, opt := range options {
			if val == opt {
				return nil
			}
		}
		msg := Labels[field] + " must be one of the listed options"
		if hint := Suggest(val, options); hint != "" {
			msg = fmt.Sprintf("%s (did you mean %q?)", msg, hint)
		}
		return issue(field, goskema.CodeInvalidEnum, msg)
	}
}

func supportTypesRule(_ context.Context, v map[string]any) error {
	selected := sliceValue(v, FieldSupportTypes)
	for _, s := range selected {
		known := false
		for _, opt := range SupportTypes {
			if s == opt {
				known = true
				break
			}
		}
		if !known {
			return issue(FieldSupportTypes, goskema.CodeInvalidEnum,
				fmt.Sprintf("%q is not an available support type", s))
		}
	}
	return nil
}

func emailRule(_ context.Context, v map[string]any) error {
	raw, ok := v[FieldEmail].(string)
	if !ok {
		return nil
	}
	if _, err := mail.ParseAddress(raw); err != nil {
		return issue(FieldEmail, goskema.CodeInvalidFormat, "Enter a valid email address")
	}
	return nil
}

func phoneRule(_ context.Context, v map[string]any) error {
	raw, ok := v[FieldPhone].(string)
	if !ok {
		return nil
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return issue(FieldPhone, goskema.CodePattern, "Phone must contain digits only")
		}
	}
	if len(raw) < 10 || len(raw) > 15 {
		return issue(FieldPhone, goskema.CodeTooShort, "Phone must be 10 to 15 digits")
	}
	return nil
}

func issue(field, code, msg string) goskema.Issues {
	return goskema.Issues{{Path: "/" + field, Code: code, Message: msg}}
}

// errorsFromIssues flattens schema issues into the per-field error map.
// The first issue per field wins; nested paths collapse onto the field.
func errorsFromIssues(iss goskema.Issues) Errors {
	errs := Errors{}
	for _, it := range iss {
		field := fieldFromPath(it.Path)
		if field == "" {
			field = "_form"
		}
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = messageFor(field, it)
	}
	return errs
}

func fieldFromPath(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

func messageFor(field string, it goskema.Issue) string {
	label := Labels[field]
	if label == "" {
		label = field
	}
	switch it.Code {
	case goskema.CodeRequired:
		if field == FieldSupportTypes {
			return "Select at least one support type"
		}
		return label + " is required"
	case goskema.CodeTooShort:
		if field == FieldSupportTypes {
			return "Select at least one support type"
		}
	case goskema.CodeInvalidType:
		return label + " is invalid"
	}
	if it.Message != "" {
		return it.Message
	}
	return label + " is invalid"
}

// normalize converts parsed wire values into their domain types.
func normalize(step Step, parsed map[string]any) Data {
	clean := make(Data, len(parsed))
	for k, v := range parsed {
		clean[k] = v
	}
	if step == StepChild {
		if raw, ok := parsed[FieldAge].(string); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
				clean[FieldAge] = n
			}
		}
	}
	if step == StepNeeds {
		clean[FieldSupportTypes] = sliceValue(parsed, FieldSupportTypes)
		if _, ok := parsed[FieldRequirements]; !ok {
			clean[FieldRequirements] = ""
		}
	}
	return clean
}
