package ports

// Watcher monitors the puzzle input directory and reports changed files.
// The adapter (fsnotify) reports only puzzle input files, and only once a burst
// of writes to a file has settled, so onChange reads finished content.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring dir. onChange is called with the absolute path
	// of each changed file. The callback may be invoked from any goroutine.
	// Returns an error if the directory doesn't exist or permissions are
	// insufficient.
	Watch(dir string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
