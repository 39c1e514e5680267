package schema

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/mxe-call/errors"
)

// DefaultCacheSize bounds how many loaded definitions a Registry keeps.
const DefaultCacheSize = 256

// Registry resolves encrypted-instruction definitions by name or comp-def
// offset. Definitions are loaded lazily from the build directory and kept
// in an LRU cache. Explicitly registered definitions are never evicted.
// A Registry is safe for concurrent use.
type Registry struct {
	buildDir  string
	cacheSize int
	logger    *zap.Logger

	cache *lru.Cache[string, *Definition]

	mu       sync.RWMutex
	pinned   map[string]*Definition
	byOffset map[uint32]string
}

// Option configures a Registry.
type Option func(*Registry)

// WithCacheSize sets the LRU capacity. Values below 1 keep the default.
func WithCacheSize(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.cacheSize = n
		}
	}
}

// WithLogger sets the registry's logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates a registry over buildDir. An empty buildDir yields a
// registry that only serves registered definitions.
func NewRegistry(buildDir string, opts ...Option) (*Registry, error) {
	r := &Registry{
		buildDir:  buildDir,
		cacheSize: DefaultCacheSize,
		logger:    Logger(),
		pinned:    make(map[string]*Definition),
		byOffset:  make(map[uint32]string),
	}
	for _, opt := range opts {
		opt(r)
	}

	cache, err := lru.New[string, *Definition](r.cacheSize)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidInput, err, "create definition cache")
	}
	r.cache = cache
	return r, nil
}

// BuildDir returns the directory interface files are read from.
func (r *Registry) BuildDir() string {
	return r.buildDir
}

// Register adds a definition that takes precedence over the build directory.
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Name == "" {
		return errors.InvalidInput(errors.PhaseSchema, "definition must have a name")
	}
	if def.Offset == 0 {
		def.Offset = Offset(def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if other, ok := r.byOffset[def.Offset]; ok && other != def.Name {
		return errors.New(errors.PhaseSchema, errors.KindMismatch).
			Path(def.Name).
			Value(def.Offset).
			Detail("offset %d already used by %q", def.Offset, other).
			Build()
	}
	r.pinned[def.Name] = def
	r.byOffset[def.Offset] = def.Name
	return nil
}

// Get returns the definition for name, loading its interface file on a
// cache miss.
func (r *Registry) Get(name string) (*Definition, error) {
	r.mu.RLock()
	def, ok := r.pinned[name]
	r.mu.RUnlock()
	if ok {
		return def, nil
	}

	if def, ok := r.cache.Get(name); ok {
		return def, nil
	}

	if r.buildDir == "" || !validName(name) {
		return nil, errors.NotFound(errors.PhaseSchema, "definition", name)
	}

	path := Path(r.buildDir, name)
	def, err := LoadDefinition(path)
	if err != nil {
		if os.IsNotExist(unwrapIO(err)) {
			return nil, errors.New(errors.PhaseSchema, errors.KindNotFound).
				Path(name).
				Detail("no interface file at %s", path).
				Cause(err).
				Build()
		}
		return nil, err
	}

	r.cache.Add(name, def)
	r.mu.Lock()
	r.byOffset[def.Offset] = name
	r.mu.Unlock()

	r.logger.Debug("loaded definition",
		zap.String("name", name),
		zap.Uint32("offset", def.Offset),
		zap.Int("slots", def.Slots()),
	)
	return def, nil
}

// GetByOffset resolves a comp-def offset. Unknown offsets trigger a scan of
// the build directory.
func (r *Registry) GetByOffset(offset uint32) (*Definition, error) {
	r.mu.RLock()
	name, ok := r.byOffset[offset]
	r.mu.RUnlock()
	if ok {
		return r.Get(name)
	}

	names, err := r.Names()
	if err != nil {
		return nil, err
	}
	for _, n := range names {
		if Offset(n) == offset {
			return r.Get(n)
		}
	}
	return nil, errors.New(errors.PhaseSchema, errors.KindNotFound).
		Value(offset).
		Detail("no definition with offset %d", offset).
		Build()
}

// Names lists every registered definition and every interface file in the
// build directory, sorted.
func (r *Registry) Names() ([]string, error) {
	seen := make(map[string]struct{})

	r.mu.RLock()
	for n := range r.pinned {
		seen[n] = struct{}{}
	}
	r.mu.RUnlock()

	if r.buildDir != "" {
		entries, err := os.ReadDir(r.buildDir)
		if err != nil {
			return nil, errors.Load("list "+r.buildDir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), FileExt) {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), FileExt)] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	slices.Sort(names)
	return names, nil
}

// Preload loads the named definitions concurrently. With no names it loads
// everything in the build directory. Missing interface files are reported
// together before anything is loaded.
func (r *Registry) Preload(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		all, err := r.Names()
		if err != nil {
			return err
		}
		names = all
	}

	var missing []string
	for _, n := range names {
		if r.has(n) {
			continue
		}
		if r.buildDir == "" || !fileExists(Path(r.buildDir, n)) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingDefinitionsError(r.buildDir, missing)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, n := range names {
		n := n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := r.Get(n)
			return err
		})
	}
	return g.Wait()
}

// Invalidate drops a cached definition so the next Get rereads its file.
// Registered definitions are not affected.
func (r *Registry) Invalidate(name string) {
	if r.cache.Remove(name) {
		r.logger.Debug("invalidated definition", zap.String("name", name))
	}
}

// Watch evicts cached definitions whose interface files change. It blocks
// until ctx is done.
func (r *Registry) Watch(ctx context.Context) error {
	if r.buildDir == "" {
		return errors.InvalidInput(errors.PhaseSchema, "registry has no build directory")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.PhaseSchema, errors.KindIO, err, "create watcher")
	}
	defer w.Close()

	if err := w.Add(r.buildDir); err != nil {
		return errors.Load("watch "+r.buildDir, err)
	}
	r.logger.Info("watching build directory", zap.String("dir", r.buildDir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, FileExt) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
				ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				r.Invalidate(strings.TrimSuffix(filepath.Base(ev.Name), FileExt))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (r *Registry) has(name string) bool {
	r.mu.RLock()
	_, ok := r.pinned[name]
	r.mu.RUnlock()
	return ok || r.cache.Contains(name)
}

// validName rejects names that would escape the build directory.
func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && name != "." && name != ".."
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func unwrapIO(err error) error {
	if e, ok := err.(*errors.Error); ok && e.Cause != nil {
		return e.Cause
	}
	return err
}
