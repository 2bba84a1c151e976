package apps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// DefaultReportPath is written relative to the working directory.
const DefaultReportPath = "detected_default_apps.json"

// App is a reported application.
type App struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Exec string `json:"exec"`
}

// Report maps each category name to the applications placed in it, in the
// order they were found.
type Report map[string][]App

// NewReport returns a report holding an empty list for every category.
func NewReport() Report {
	r := make(Report, len(categories))
	for _, c := range categories {
		r[c.Name] = []App{}
	}
	return r
}

// Len is the number of placements across all categories.
func (r Report) Len() int {
	n := 0
	for _, list := range r {
		n += len(list)
	}
	return n
}

// MarshalJSON emits categories in table order. Every category is present,
// empty ones as []. HTML characters are left unescaped.
func (r Report) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	for _, name := range CategoryNames() {
		list := r[name]
		if list == nil {
			list = []App{}
		}
		raw, err := encodeList(list)
		if err != nil {
			return nil, fmt.Errorf("unable to encode %s: %w", name, err)
		}
		out, err = sjson.SetRawBytes(out, gjson.Escape(name), raw)
		if err != nil {
			return nil, fmt.Errorf("unable to add %s: %w", name, err)
		}
	}
	return out, nil
}

// Encode renders the report with two-space indentation and a trailing
// newline.
func (r Report) Encode() ([]byte, error) {
	raw, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(raw, &pretty.Options{Indent: "  "}), nil
}

// WriteReport encodes r and writes it to path. Relative paths are resolved
// against the runtime's working directory.
func WriteReport(ctx context.Context, rt *toolkit.Runtime, path string, r Report) (string, error) {
	lg := mylog.LoggerFromContext(ctx)

	data, err := r.Encode()
	if err != nil {
		return "", err
	}
	path, err = resolvePath(rt, path)
	if err != nil {
		return "", err
	}
	if err := rt.AtomicWriteFile(path, data, 0o644); err != nil {
		lg.Error("failed to write report", "path", path, "err", err)
		return "", fmt.Errorf("unable to write report %q: %w", path, err)
	}
	lg.Info("report written", "path", path, "apps", r.Len())
	return path, nil
}

func encodeList(list []App) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(list); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

func resolvePath(rt *toolkit.Runtime, path string) (string, error) {
	expanded, err := toolkit.ExpandPath(rt, toolkit.ExpandEnv(rt, path))
	if err != nil {
		return "", fmt.Errorf("unable to resolve path %q: %w", path, err)
	}
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	wd, err := rt.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to determine working directory: %w", err)
	}
	return filepath.Join(wd, expanded), nil
}
