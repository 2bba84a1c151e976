package dock

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedConfig indicates the config file is not valid JSON.
	ErrMalformedConfig = errors.New("dock: malformed config")

	// ErrInvalidDock indicates the document or its dock section is not a JSON
	// object and cannot receive default properties.
	ErrInvalidDock = errors.New("dock: invalid dock section")
)

// MalformedConfigError carries the path of a config file that failed to
// parse.
type MalformedConfigError struct {
	Path string
}

func (e *MalformedConfigError) Error() string {
	if e.Path == "" {
		return "malformed config: not valid JSON"
	}
	return fmt.Sprintf("malformed config %s: not valid JSON", e.Path)
}

func (e *MalformedConfigError) Is(target error) bool {
	return target == ErrMalformedConfig
}

func (e *MalformedConfigError) Unwrap() error { return ErrMalformedConfig }

// IsMalformedConfig reports whether err is (or wraps) a malformed config
// condition.
func IsMalformedConfig(err error) bool {
	return errors.Is(err, ErrMalformedConfig)
}
