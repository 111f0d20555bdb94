package du

// SizeRecord describes one filesystem node visited during a walk.
type SizeRecord struct {
	// Path is the node's path as traversed.
	Path string
	// Size is the size in bytes. For a directory this is the sum of all
	// descendant file sizes; directories themselves contribute nothing.
	Size uint64
	// Depth is the number of directory hops from the traversal root (root = 0).
	Depth int
}

// Options configures a disk-usage run.
type Options struct {
	// Path is the file or directory to report on.
	Path string
	// MaxDepth is the maximum depth to report records for (0 = root only).
	MaxDepth int
	// HumanReadable selects unit-scaled output instead of raw byte counts.
	HumanReadable bool
	// Sort orders records by ascending size before rendering.
	Sort bool
	// MinSize hides records smaller than this many bytes.
	MinSize uint64
	// Debug indicates whether debug output is enabled.
	Debug bool
}
