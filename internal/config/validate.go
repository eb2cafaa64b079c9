package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// ValidationError describes one schema violation in a configuration.
type ValidationError struct {
	// Field is the dotted path of the offending field ("bounds.high").
	Field string `json:"field"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validate checks cfg against the embedded CUE schema.
//
// Returns the list of violations (empty when the configuration is valid).
// The second return is non-nil only for internal failures - a schema that
// does not compile is a bug in this package, not in the configuration.
func Validate(cfg Config) ([]ValidationError, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("config schema missing #Config definition")
	}

	val := ctx.Encode(cfg)
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	var violations []ValidationError
	if err := def.Unify(val).Validate(cue.Concrete(true)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			violations = append(violations, ValidationError{
				Field:   strings.Join(e.Path(), "."),
				Message: e.Error(),
			})
		}
	}

	// Conditional requirement the schema doesn't express: an enabled journal
	// needs somewhere to write.
	if cfg.Trace.Enabled && cfg.Trace.Database == "" {
		violations = append(violations, ValidationError{
			Field:   "trace.database",
			Message: "required when trace.enabled is true",
		})
	}

	return violations, nil
}
