package apps

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/qsdots/qsutil/pkg/desktop"
)

var defaultDirs = [...]string{
	"/usr/share/applications",
	"~/.local/share/applications",
}

// DefaultDirs returns the application directories scanned by default. Earlier
// directories win deduplication.
func DefaultDirs() []string {
	return append([]string(nil), defaultDirs[:]...)
}

// SeenSet holds the primary exec tokens already claimed by an entry. It is
// shared across all directories and categories of one detection run.
type SeenSet map[string]struct{}

// NewSeenSet returns an empty set.
func NewSeenSet() SeenSet { return SeenSet{} }

// Has reports whether token was claimed.
func (s SeenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Decision describes what Place did with an entry.
type Decision int

const (
	// Placed means the entry claimed its exec token and matched at least one
	// category.
	Placed Decision = iota
	// Unclassified means the entry claimed its exec token but matched no
	// category.
	Unclassified
	// Duplicate means another entry already claimed the exec token.
	Duplicate
	// Hidden means the entry is marked NoDisplay.
	Hidden
	// NoExec means the entry has no command to deduplicate on.
	NoExec
)

func (d Decision) String() string {
	switch d {
	case Placed:
		return "placed"
	case Unclassified:
		return "unclassified"
	case Duplicate:
		return "duplicate"
	case Hidden:
		return "hidden"
	case NoExec:
		return "no-exec"
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// Place adds e to every category it matches unless it is hidden or its exec
// token was already seen. Like append, it may update r and seen in place and
// callers must use the returned values.
func Place(r Report, seen SeenSet, e *desktop.Entry) (Report, SeenSet, Decision) {
	if r == nil {
		r = NewReport()
	}
	if seen == nil {
		seen = NewSeenSet()
	}
	if e.NoDisplay {
		return r, seen, Hidden
	}
	token := e.ExecToken()
	if token == "" {
		return r, seen, NoExec
	}
	if seen.Has(token) {
		return r, seen, Duplicate
	}
	seen[token] = struct{}{}

	matched := Classify(e.Categories)
	if len(matched) == 0 {
		return r, seen, Unclassified
	}
	app := App{Name: e.Name, Icon: e.Icon, Exec: e.Exec}
	for _, name := range matched {
		r[name] = append(r[name], app)
	}
	return r, seen, Placed
}

// Stats counts what happened to the files of a scan.
type Stats struct {
	Files        int
	Placed       int
	Unclassified int
	Duplicates   int
	Hidden       int
	NoExec       int
	Invalid      int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Files += o.Files
	s.Placed += o.Placed
	s.Unclassified += o.Unclassified
	s.Duplicates += o.Duplicates
	s.Hidden += o.Hidden
	s.NoExec += o.NoExec
	s.Invalid += o.Invalid
}

func (s *Stats) count(d Decision) {
	switch d {
	case Placed:
		s.Placed++
	case Unclassified:
		s.Unclassified++
	case Duplicate:
		s.Duplicates++
	case Hidden:
		s.Hidden++
	case NoExec:
		s.NoExec++
	}
}

// ScanDir places every *.desktop file directly inside dir. Files are visited
// in lexical order. A missing directory contributes nothing; files that
// cannot be read or parsed are skipped.
func ScanDir(ctx context.Context, rt *toolkit.Runtime, dir string, r Report, seen SeenSet) (Report, SeenSet, Stats) {
	lg := mylog.LoggerFromContext(ctx)
	var stats Stats

	if r == nil {
		r = NewReport()
	}
	if seen == nil {
		seen = NewSeenSet()
	}

	expanded, err := toolkit.ExpandPath(rt, dir)
	if err != nil {
		lg.Warn("unable to resolve application directory", "dir", dir, "err", err)
		return r, seen, stats
	}
	matches, err := rt.Glob(filepath.Join(expanded, "*"+desktop.Ext))
	if err != nil {
		lg.Warn("unable to list application directory", "dir", expanded, "err", err)
		return r, seen, stats
	}
	sort.Strings(matches)

	for _, path := range matches {
		// Shell globs do not match dot files; keep that behavior.
		if strings.HasPrefix(filepath.Base(path), ".") {
			continue
		}
		stats.Files++
		e, err := desktop.ReadFile(rt, path)
		if err != nil {
			stats.Invalid++
			lg.Debug("skipping desktop entry", "path", path, "err", err)
			continue
		}
		var d Decision
		r, seen, d = Place(r, seen, e)
		stats.count(d)
		lg.Debug("desktop entry scanned", "path", path, "decision", d.String())
	}
	return r, seen, stats
}

// Detect scans dirs in order and returns the combined report.
func Detect(ctx context.Context, rt *toolkit.Runtime, dirs []string) (Report, Stats) {
	lg := mylog.LoggerFromContext(ctx)

	r := NewReport()
	seen := NewSeenSet()
	var total Stats
	for _, dir := range dirs {
		var stats Stats
		r, seen, stats = ScanDir(ctx, rt, dir, r, seen)
		total.Add(stats)
	}
	lg.Info("application scan finished",
		"dirs", dirs,
		"files", total.Files,
		"placed", total.Placed,
		"duplicates", total.Duplicates,
		"hidden", total.Hidden,
		"invalid", total.Invalid)
	return r, total
}
