package scan

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultSettle is how long a capture must stay unchanged before it is decoded.
const DefaultSettle = 150 * time.Millisecond

var ErrNotDirectory = errors.New("capture path is not a directory")

// DirSource watches a capture directory and decodes new images as they land.
type DirSource struct {
	dir    string
	settle time.Duration
	log    zerolog.Logger
	frames chan string
	errs   chan error

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	pending map[string]*time.Timer
	done    chan struct{}
	closed  bool
}

// NewDirSource constructs a source for dir. Nothing is watched until Request.
func NewDirSource(dir string, logger zerolog.Logger) *DirSource {
	return &DirSource{
		dir:     dir,
		settle:  DefaultSettle,
		log:     logger,
		frames:  make(chan string, 8),
		errs:    make(chan error, 8),
		pending: make(map[string]*time.Timer),
	}
}

// WithSettle overrides the settle delay.
func (s *DirSource) WithSettle(settle time.Duration) *DirSource {
	s.settle = settle
	return s
}

// Dir returns the watched directory.
func (s *DirSource) Dir() string {
	return s.dir
}

// Request checks the directory is readable and starts watching it.
func (s *DirSource) Request(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return PermissionUndetermined, err
	}
	if err := checkReadable(s.dir); err != nil {
		if errors.Is(err, os.ErrPermission) || errors.Is(err, os.ErrNotExist) || errors.Is(err, ErrNotDirectory) {
			s.log.Warn().Err(err).Str("dir", s.dir).Msg("capture directory unavailable")
			return PermissionDenied, nil
		}
		return PermissionDenied, errors.Wrapf(err, "check %s", s.dir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return PermissionDenied, errors.New("source closed")
	}
	if s.watcher != nil {
		return PermissionGranted, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return PermissionDenied, errors.Wrap(err, "create watcher")
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		if errors.Is(err, os.ErrPermission) {
			return PermissionDenied, nil
		}
		return PermissionDenied, errors.Wrapf(err, "watch %s", s.dir)
	}
	s.watcher = watcher
	s.done = make(chan struct{})
	go s.run(watcher, s.done)
	s.log.Info().Str("dir", s.dir).Msg("watching for captures")
	return PermissionGranted, nil
}

// Frames yields decoded payloads.
func (s *DirSource) Frames() <-chan string {
	return s.frames
}

// Errors yields decode and watch failures.
func (s *DirSource) Errors() <-chan error {
	return s.errs
}

// Close stops watching and closes the output channels.
func (s *DirSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	watcher, done := s.watcher, s.done
	for path, timer := range s.pending {
		timer.Stop()
		delete(s.pending, path)
	}
	s.mu.Unlock()

	var err error
	if watcher != nil {
		err = watcher.Close()
		<-done
	}
	s.mu.Lock()
	close(s.frames)
	close(s.errs)
	s.mu.Unlock()
	return err
}

// run forwards watcher events until the watcher is closed.
func (s *DirSource) run(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !IsImagePath(event.Name) {
				continue
			}
			s.schedule(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.emitError(errors.Wrap(err, "watch captures"))
		}
	}
}

// schedule decodes path once writes to it have settled.
func (s *DirSource) schedule(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if timer, ok := s.pending[path]; ok {
		timer.Reset(s.settle)
		return
	}
	s.pending[path] = time.AfterFunc(s.settle, func() {
		s.mu.Lock()
		delete(s.pending, path)
		s.mu.Unlock()
		s.decode(path)
	})
}

func (s *DirSource) decode(path string) {
	payload, err := DecodeFile(path)
	switch {
	case err == nil:
		s.log.Info().Str("file", path).Str("payload", payload).Msg("code scanned")
		s.emitFrame(payload)
	case errors.Is(err, ErrNoCode):
		s.log.Debug().Str("file", path).Msg("no code in capture")
	case errors.Is(err, os.ErrNotExist):
	default:
		s.emitError(err)
	}
}

// emitFrame delivers a payload, dropping it when the consumer is busy.
func (s *DirSource) emitFrame(payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.frames <- payload:
	default:
		s.log.Debug().Str("payload", payload).Msg("scan dropped")
	}
}

func (s *DirSource) emitError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.errs <- err:
	default:
	}
}

// checkReadable verifies dir exists, is a directory and can be listed.
func checkReadable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ErrNotDirectory
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && err != io.EOF {
		return err
	}
	return nil
}
