// Package du computes disk-space usage for a filesystem path.
//
// A directory is walked bottom-up with an explicit stack, producing one size
// record per node visited, with every directory's record following the records
// of its children. A file path resolves to a single record. Records can be
// filtered by depth and minimum size, sorted by size, and rendered either as
// aligned raw byte counts or as unit-scaled human-readable strings.
package du
