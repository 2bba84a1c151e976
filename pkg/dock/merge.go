package dock

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var prettyOptions = &pretty.Options{Indent: "  "}

// MergeResult is the outcome of merging the dock defaults into a config
// document.
type MergeResult struct {
	// Path is the config file the result was read from. Empty for Merge.
	Path string

	// Data is the rewritten document, indented with two spaces.
	Data []byte

	// Added lists the properties that were missing, in table order.
	Added []string
}

// Changed reports whether any property was added.
func (r *MergeResult) Changed() bool {
	return r != nil && len(r.Added) > 0
}

// Summary is the one-line report printed after a merge.
func (r *MergeResult) Summary() string {
	if !r.Changed() {
		return "All dock properties already exist in config.json"
	}
	return "Added missing dock properties: " + strings.Join(r.Added, ", ")
}

// Merge fills in every dock default missing from doc. Values already present
// are kept as-is and the key order of doc is preserved; new keys are appended
// in table order.
func Merge(doc []byte) (*MergeResult, error) {
	if !gjson.ValidBytes(doc) {
		return nil, &MalformedConfigError{}
	}
	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top-level value is %s, expected an object",
			ErrInvalidDock, kindOf(root))
	}

	out := append([]byte(nil), doc...)
	section := root.Get(SectionKey)
	switch {
	case !section.Exists():
		var err error
		out, err = sjson.SetRawBytes(out, SectionKey, []byte("{}"))
		if err != nil {
			return nil, fmt.Errorf("unable to add %s section: %w", SectionKey, err)
		}
	case !section.IsObject():
		return nil, fmt.Errorf("%w: %q is %s, expected an object",
			ErrInvalidDock, SectionKey, kindOf(section))
	}

	added := make([]string, 0, len(defaults))
	for _, p := range Defaults() {
		path := SectionKey + "." + gjson.Escape(p.Key)
		if gjson.GetBytes(out, path).Exists() {
			continue
		}
		var err error
		out, err = sjson.SetBytes(out, path, p.Value)
		if err != nil {
			return nil, fmt.Errorf("unable to set %s: %w", path, err)
		}
		added = append(added, p.Key)
	}

	return &MergeResult{
		Data:  pretty.PrettyOptions(out, prettyOptions),
		Added: added,
	}, nil
}

// MergeOptions configures MergeFile.
type MergeOptions struct {
	// DryRun computes the result without writing it back.
	DryRun bool
}

// MergeFile merges the dock defaults into the config file at path and writes
// it back in place. A missing file is treated as an empty object. The parent
// directory is not created; a missing directory surfaces as a write error.
func MergeFile(ctx context.Context, rt *toolkit.Runtime, path string, opts MergeOptions) (*MergeResult, error) {
	lg := mylog.LoggerFromContext(ctx)

	data, err := rt.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		lg.Debug("config not found, starting from an empty object", "path", path)
		data = []byte("{}")
	case err != nil:
		return nil, fmt.Errorf("unable to read config %q: %w", path, err)
	}

	res, err := Merge(data)
	if err != nil {
		var malformed *MalformedConfigError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		lg.Error("failed to merge dock defaults", "path", path, "err", err)
		return nil, err
	}
	res.Path = path

	if opts.DryRun {
		lg.Info("dry run, config left untouched", "path", path, "added", res.Added)
		return res, nil
	}
	if _, err := rt.Stat(filepath.Dir(path), true); err != nil {
		lg.Error("config directory missing", "path", path, "err", err)
		return nil, fmt.Errorf("unable to write config %q: %w", path, err)
	}
	if err := rt.AtomicWriteFile(path, res.Data, 0o644); err != nil {
		lg.Error("failed to write config", "path", path, "err", err)
		return nil, fmt.Errorf("unable to write config %q: %w", path, err)
	}
	lg.Info("dock config merged", "path", path, "added", res.Added)
	return res, nil
}

func kindOf(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "an object"
	case r.IsArray():
		return "an array"
	}
	switch r.Type {
	case gjson.String:
		return "a string"
	case gjson.Number:
		return "a number"
	case gjson.True, gjson.False:
		return "a boolean"
	case gjson.Null:
		return "null"
	}
	return "empty"
}
