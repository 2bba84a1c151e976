package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qsdots/qsutil/pkg/dock"
	"github.com/qsdots/qsutil/pkg/qsutil"
)

func renderUserError(err error, deps *Deps) string {
	if err == nil {
		return ""
	}

	var malformed *dock.MalformedConfigError
	if errors.As(err, &malformed) && malformed.Path != "" {
		if isDebugLogLevel(deps) {
			return err.Error()
		}
		return fmt.Sprintf("%s is not valid JSON; fix or remove it and run again", malformed.Path)
	}

	if errors.Is(err, dock.ErrInvalidDock) {
		return "cannot add dock properties: " + strings.TrimPrefix(err.Error(), dock.ErrInvalidDock.Error()+": ")
	}

	if errors.Is(err, qsutil.ErrConfigExists) {
		return fmt.Sprintf("%s (remove it first to start over)", err.Error())
	}

	return err.Error()
}

func isDebugLogLevel(deps *Deps) bool {
	if deps == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(deps.LogLevel), "debug")
}
