package du

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Run reports disk usage for opts.Path to w, one line per record.
//
// A directory root is walked in full, then the records are reduced by the
// depth and min-size filters, optionally sorted by ascending size, and
// rendered. A file root produces its single record directly; it sits at depth
// 0 and so passes any filter. Partial failures inside the tree are reported
// through warnf and never fail the run; only a root that cannot be read does.
func Run(opts Options, w io.Writer, warnf WarnFunc, progress ProgressFunc) error {
	path := NormalizePath(opts.Path)
	if path == "" {
		path = "."
	}

	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("accessing path %q: %w", path, err)
	}

	if !info.IsDir() {
		rec, err := FileSize(path, 0)
		if err != nil {
			return err
		}

		return FormatRecords(w, []SizeRecord{rec}, opts.HumanReadable)
	}

	records, _, err := WalkDir(path, warnf, progress)
	if err != nil {
		return err
	}

	records = FilterDepth(records, opts.MaxDepth)
	records = FilterMinSize(records, opts.MinSize)

	if opts.Sort {
		SortBySize(records)
	}

	return FormatRecords(w, records, opts.HumanReadable)
}
