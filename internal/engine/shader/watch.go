package shader

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/logger"
)

// Watcher reports shader programs whose files changed on disk. It only
// posts names; reloading happens on the render thread.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	log     *zap.Logger
}

// Watch starts watching dir.
func Watch(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		log:     logger.Named("shader"),
	}
	go w.run()

	w.log.Info("Watching shaders", zap.String("dir", dir))
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := ProgramName(ev.Name)
			if name == "" {
				continue
			}
			select {
			case w.changes <- name:
			default:
				// Full; the program is already queued or will be soon.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("Shader watcher error", zap.Error(err))
		}
	}
}

// Drain returns the distinct program names queued since the last call
// without blocking.
func (w *Watcher) Drain() []string {
	var names []string
	seen := make(map[string]bool)
	for {
		select {
		case name := <-w.changes:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}
