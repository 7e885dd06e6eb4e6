package catalog

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for catalogue loading.
const (
	ErrCodeRead        = "E101"
	ErrCodeFormat      = "E102"
	ErrCodeParse       = "E103"
	ErrCodeSchema      = "E104"
	ErrCodeInvalidDish = "E105"
)

// LoadError represents an error that occurred while loading a catalogue.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// schemaError converts a CUE error into a LoadError, keeping the first
// position CUE reports.
func schemaError(path string, err error) *LoadError {
	le := &LoadError{Code: ErrCodeSchema, Path: path, Message: err.Error(), Err: err}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return le
	}
	first := errs[0]
	le.Message = first.Error()
	if positions := errors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
