package watch

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Collector records file writes under a root directory.
//
// Collector is safe for concurrent use.
type Collector struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	root    string

	// changed records each written or created file once.
	changed map[string]struct{}

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewCollector creates a collector watching root and all its
// subdirectories. Hidden directories (leading dot, e.g. .git) are
// skipped.
func NewCollector(root string) (*Collector, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	c := &Collector{
		watcher: fsw,
		root:    absRoot,
		changed: make(map[string]struct{}),
		closeCh: make(chan struct{}),
	}

	if err := c.watchTree(absRoot); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	c.closedWg.Add(1)
	go c.processLoop()

	return c, nil
}

// Root returns the watched root directory.
func (c *Collector) Root() string {
	return c.root
}

// Paths returns the files recorded so far, sorted.
func (c *Collector) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	paths := make([]string, 0, len(c.changed))
	for p := range c.changed {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Count returns the number of distinct files recorded.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.changed)
}

// Close stops watching. Paths remains valid after Close.
func (c *Collector) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.closeCh)
	c.mu.Unlock()

	err := c.watcher.Close()
	c.closedWg.Wait()
	return err
}

// watchTree adds watches for root and every non-hidden subdirectory.
func (c *Collector) watchTree(root string) error {
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries, continue walking
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		// fsnotify reports file events for watched directories.
		if watchErr := c.watcher.Add(p); watchErr != nil {
			return nil
		}
		return nil
	})
}

// processLoop drains fsnotify events until Close.
func (c *Collector) processLoop() {
	defer c.closedWg.Done()

	for {
		select {
		case <-c.closeCh:
			return

		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			c.handleEvent(event)

		case _, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are tolerated; collection stays best effort.
		}
	}
}

// handleEvent records writes and creates, and extends the watch to newly
// created directories.
func (c *Collector) handleEvent(event fsnotify.Event) {
	if isHidden(filepath.Base(event.Name)) {
		return
	}

	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = c.watcher.Add(event.Name)
			return
		}
	}

	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}

	c.mu.Lock()
	if !c.closed {
		c.changed[event.Name] = struct{}{}
	}
	c.mu.Unlock()
}

// isHidden reports whether a path component starts with a dot.
func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
