package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"passwordStrengthChecker/internal/core/reference"
	"passwordStrengthChecker/internal/core/service"
	"passwordStrengthChecker/internal/pkg/logging"
	"passwordStrengthChecker/internal/port"
)

const DefaultDebounce = 250 * time.Millisecond

// BuildFunc turns freshly loaded words into a new engine.
type BuildFunc func(words []string) *service.StrengthService

// WordlistWatcher reloads the dictionary when its file changes and swaps the
// rebuilt engine into a Holder. The parent directory is watched so that
// editors which replace the file on save are still picked up.
type WordlistWatcher struct {
	path     string
	source   port.WordlistSource
	holder   *service.Holder
	build    BuildFunc
	log      *logging.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}

	timerMu sync.Mutex
	timer   *time.Timer

	reloads chan struct{}
}

type Config struct {
	Path     string
	Source   port.WordlistSource
	Holder   *service.Holder
	Build    BuildFunc
	Logger   *logging.Logger
	Debounce time.Duration
}

func NewWordlistWatcher(cfg Config) (*WordlistWatcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("wordlist path is required")
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wordlist path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	build := cfg.Build
	if build == nil {
		build = func(words []string) *service.StrengthService {
			return service.NewStrengthService(reference.New(words))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &WordlistWatcher{
		path:     abs,
		source:   cfg.Source,
		holder:   cfg.Holder,
		build:    build,
		log:      logging.OrNop(cfg.Logger).WithComponent("wordlist-watcher"),
		debounce: cfg.Debounce,
		watcher:  watcher,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		reloads:  make(chan struct{}, 1),
	}

	go w.eventLoop()
	return w, nil
}

// Reloaded signals after each successful swap. Signals coalesce.
func (w *WordlistWatcher) Reloaded() <-chan struct{} {
	return w.reloads
}

func (w *WordlistWatcher) Stop() error {
	w.cancel()
	err := w.watcher.Close()
	<-w.done

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// Reload loads the wordlist now and swaps in the rebuilt engine. On failure
// the current engine stays in place.
func (w *WordlistWatcher) Reload() error {
	words, err := w.source.Load(w.path)
	if err != nil {
		w.log.Warn("wordlist reload failed, keeping current dictionary", "path", w.path, "error", err)
		return err
	}

	w.holder.Swap(w.build(words))
	w.log.Info("wordlist reloaded", "path", w.path, "words", len(words))

	select {
	case w.reloads <- struct{}{}:
	default:
	}
	return nil
}

func (w *WordlistWatcher) eventLoop() {
	defer close(w.done)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

func (w *WordlistWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if w.ctx.Err() != nil {
			return
		}
		_ = w.Reload()
	})
}
