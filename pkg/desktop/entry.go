// Package desktop reads freedesktop.org desktop entry files (the *.desktop
// descriptors applications install under share/applications).
package desktop

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/jlrickert/cli-toolkit/toolkit"
)

const (
	// Section is the group every desktop entry file must carry.
	Section = "Desktop Entry"

	// Ext is the file extension of desktop entry files.
	Ext = ".desktop"
)

var (
	// ErrNoDesktopEntry indicates the file has no [Desktop Entry] group.
	ErrNoDesktopEntry = errors.New("desktop: missing [Desktop Entry] section")

	// ErrParse indicates the file is not a key=value sectioned document.
	ErrParse = errors.New("desktop: unable to parse entry")
)

// ParseError wraps a syntax error for a single desktop file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse desktop entry %s: %v", e.Path, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// loadOptions follow the desktop entry format rather than generic INI: only
// '=' separates keys, ';' and '#' inside values are data (Categories is a
// ';' separated list), quotes belong to the value and lines are never
// continued.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:         true,
	IgnoreContinuation:      true,
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
	KeyValueDelimiters:      "=",
}

// Entry is the subset of a desktop entry used to classify and launch an
// application.
type Entry struct {
	// Path is the file the entry was read from.
	Path string

	Name       string
	Icon       string
	Exec       string
	Categories string

	// NoDisplay is set when the entry asks not to be shown in menus.
	NoDisplay bool
}

// Parse decodes the desktop entry in data. path is used for the Name
// fallback and in errors.
func Parse(path string, data []byte) (*Entry, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	sec, err := f.GetSection(Section)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDesktopEntry)
	}

	get := func(key, fallback string) string {
		if !sec.HasKey(key) {
			return fallback
		}
		// Value skips the %(name)s interpolation String would apply.
		return sec.Key(key).Value()
	}

	return &Entry{
		Path:       path,
		Name:       get("name", filepath.Base(path)),
		Icon:       get("icon", ""),
		Exec:       get("exec", ""),
		Categories: get("categories", ""),
		NoDisplay:  strings.EqualFold(get("nodisplay", "false"), "true"),
	}, nil
}

// ReadFile reads and parses the desktop entry at path through rt.
func ReadFile(rt *toolkit.Runtime, path string) (*Entry, error) {
	data, err := rt.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read desktop entry %s: %w", path, err)
	}
	return Parse(path, data)
}

// ExecToken returns the first whitespace separated token of Exec, or "" when
// Exec is blank.
func (e *Entry) ExecToken() string {
	fields := strings.Fields(e.Exec)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
