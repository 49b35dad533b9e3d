package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrIntegrity is returned by New when the dataset breaks a catalog invariant.
// The embedded dataset never changes at runtime, so callers treat it as fatal.
var ErrIntegrity = errors.New("catalog integrity violation")

// fieldValidate checks the per-record struct tags.
var fieldValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every invariant of a dataset and returns all violations
// joined together, or nil.
//
// Field-level rules (required text, EndYear >= StartYear, Duration > 0,
// non-empty key texts) come from struct tags. Cross-record rules are:
//   - cycle ids and tradition ids are unique
//   - every cycle's Tradition label equals some tradition's Name
//   - every tradition groups at least one cycle
//   - every convergence entry ends in the convergence year
func Validate(ds Dataset) error {
	var errs []error

	cycleIDs := make(map[string]bool, len(ds.Cycles))
	labels := make(map[string]int, len(ds.Cycles))
	for i, c := range ds.Cycles {
		if err := checkFields(c); err != nil {
			errs = append(errs, fmt.Errorf("cycle %d (%q): %w", i, c.ID, err))
		}
		if cycleIDs[c.ID] {
			errs = append(errs, fmt.Errorf("duplicate cycle id %q", c.ID))
		}
		cycleIDs[c.ID] = true
		labels[c.Tradition]++
	}

	traditionIDs := make(map[string]bool, len(ds.Traditions))
	names := make(map[string]bool, len(ds.Traditions))
	for i, t := range ds.Traditions {
		if err := checkFields(t); err != nil {
			errs = append(errs, fmt.Errorf("tradition %d (%q): %w", i, t.ID, err))
		}
		if traditionIDs[t.ID] {
			errs = append(errs, fmt.Errorf("duplicate tradition id %q", t.ID))
		}
		traditionIDs[t.ID] = true
		names[t.Name] = true

		if labels[t.Name] == 0 {
			errs = append(errs, fmt.Errorf("tradition %q groups no cycles (name %q)", t.ID, t.Name))
		}
	}

	for _, c := range ds.Cycles {
		if !names[c.Tradition] {
			errs = append(errs, fmt.Errorf("orphan cycle %q: no tradition named %q", c.ID, c.Tradition))
		}
	}

	for i, e := range ds.Events {
		if err := checkFields(e); err != nil {
			errs = append(errs, fmt.Errorf("timeline event %d (%d): %w", i, e.Year, err))
		}
	}

	for i, e := range ds.Convergence.Entries {
		if err := checkFields(e); err != nil {
			errs = append(errs, fmt.Errorf("convergence entry %d (%q): %w", i, e.Tradition, err))
		}
		if e.End != ds.Convergence.Year {
			errs = append(errs, fmt.Errorf("convergence entry %q ends in %d, want %d", e.Tradition, e.End, ds.Convergence.Year))
		}
	}

	return errors.Join(errs...)
}

// checkFields runs the struct-tag validator and flattens its report into a
// single readable error.
func checkFields(v any) error {
	err := fieldValidate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
