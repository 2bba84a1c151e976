package qsutil

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrInvalidConfig indicates the tool configuration cannot be parsed or
	// fails validation.
	ErrInvalidConfig = errors.New("qsutil: invalid config")

	// ErrConfigExists indicates config init would overwrite an existing file.
	ErrConfigExists = errors.New("qsutil: config already exists")
)

// InvalidConfigError represents a validation or parse failure for the tool
// config.
type InvalidConfigError struct {
	Path string
	Msg  string
}

func (e *InvalidConfigError) Error() string {
	switch {
	case e.Path != "" && e.Msg != "":
		return fmt.Sprintf("invalid qsutil config %s: %s", e.Path, e.Msg)
	case e.Msg != "":
		return fmt.Sprintf("invalid qsutil config: %s", e.Msg)
	}
	return "invalid qsutil config"
}

func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// NewInvalidConfigError creates an InvalidConfigError with a human message.
func NewInvalidConfigError(path, msg string) error {
	return &InvalidConfigError{Path: path, Msg: msg}
}

// IsInvalidConfig reports whether err is (or wraps) an invalid-config condition.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
