package du

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProgressFunc receives running entry and byte counts as the walk proceeds.
type ProgressFunc func(entries, bytes int64)

// WarnFunc receives a message for each entry skipped during the walk.
type WarnFunc func(format string, args ...any)

// FileSize resolves a regular file to a SizeRecord at the given depth, with
// the size taken from filesystem metadata.
func FileSize(path string, depth int) (SizeRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return SizeRecord{}, fmt.Errorf("reading metadata for %q: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return SizeRecord{}, fmt.Errorf("%q: %w", path, ErrNotFile)
	}

	return SizeRecord{Path: path, Size: uint64(info.Size()), Depth: depth}, nil
}

// frame is one directory on the traversal stack: its listed children, a
// cursor into them, and the running total of everything accounted beneath it.
type frame struct {
	path    string
	depth   int
	entries []os.DirEntry
	next    int
	total   uint64
}

// WalkDir traverses the directory tree rooted at root and returns one record
// per node visited plus the aggregate size of the whole tree. Records for a
// directory's children always precede the directory's own aggregate record;
// the root's record is last.
//
// Entries that cannot be read (unreadable subdirectories, files whose
// metadata is unavailable, symlinks and other non-regular entries) are
// skipped: warnf is called, nothing is added to the enclosing totals, and no
// record is produced for them or their descendants. Symlinks to directories
// are not followed.
//
// Traversal uses an explicit stack, so tree depth is bounded by memory rather
// than call-stack size. Each directory handle is released by os.ReadDir
// before any descent into the children it listed.
func WalkDir(root string, warnf WarnFunc, progress ProgressFunc) ([]SizeRecord, uint64, error) {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, 0, fmt.Errorf("reading metadata for %q: %w", root, err)
	}

	if !info.IsDir() {
		return nil, 0, fmt.Errorf("%q: %w", root, ErrNotDirectory)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, 0, fmt.Errorf("reading directory %q: %w", root, err)
	}

	var (
		records []SizeRecord
		visited int64
		bytes   int64
	)

	report := func() {
		visited++
		if progress != nil {
			progress(visited, bytes)
		}
	}

	stack := []*frame{{path: root, entries: entries}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next >= len(top.entries) {
			// All children accounted for: emit the directory's aggregate
			// record and roll its total into the parent frame.
			records = append(records, SizeRecord{Path: top.path, Size: top.total, Depth: top.depth})

			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				stack[len(stack)-1].total += top.total
			}

			report()

			continue
		}

		entry := top.entries[top.next]
		top.next++

		child := filepath.Join(top.path, entry.Name())

		if entry.IsDir() {
			childEntries, err := os.ReadDir(child)
			if err != nil {
				warnf("cannot read directory %q: %v", child, err)

				continue
			}

			stack = append(stack, &frame{path: child, depth: top.depth + 1, entries: childEntries})

			continue
		}

		rec, err := FileSize(child, top.depth+1)
		if err != nil {
			warnf("cannot size %q: %v", child, err)

			continue
		}

		records = append(records, rec)
		top.total += rec.Size
		bytes += int64(rec.Size)

		report()
	}

	// The root record is appended last and carries the tree's aggregate.
	return records, records[len(records)-1].Size, nil
}
