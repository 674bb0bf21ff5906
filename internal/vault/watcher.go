package vault

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher emits a change signal whenever a markdown document under the
// vault root is created, modified, renamed, or deleted. Signals carry no
// payload: consumers reload the full document set, and the loader
// coalesces bursts, so a single latest-wins slot is enough.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan struct{}
	done   chan struct{}
	log    *slog.Logger
}

// NewWatcher starts watching the vault root and all of its
// subdirectories. Directories created later are picked up as their
// create events arrive.
func NewWatcher(root string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if walkErr != nil {
		fw.Close()
		return nil, walkErr
	}

	w := &Watcher{
		fw:     fw,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
		log:    logger,
	}
	go w.loop()
	return w, nil
}

// Events returns the change-signal channel. It is closed by Close.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close releases the filesystem subscription. No further signals are
// emitted afterwards.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	// New subdirectories need their own watch before their contents
	// produce events.
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.fw.Add(ev.Name); err != nil {
				w.log.Warn("cannot watch new directory", "path", ev.Name, "error", err)
			}
			w.signal()
			return
		}
	}
	if !isMarkdown(ev.Name) {
		return
	}
	if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) ||
		ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename) {
		w.signal()
	}
}

// signal is non-blocking: a pending signal already covers this change.
func (w *Watcher) signal() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
