package clang

import (
	"runtime"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// SharedLibrary is one loaded libclang image together with the function
// table bound against it. Instances are reference counted: LoadLibrary
// returns one holding a single reference, Binding.Get hands out an
// extra one, and every holder calls Release exactly once. The image is
// closed when the last reference goes away, so two goroutines holding
// the same instance never pull the library out from under each other.
type SharedLibrary struct {
	path    string
	version Version
	img     image
	table   *FunctionTable
	logger  logrus.FieldLogger
	refs    atomic.Int64
}

// LoadLibrary searches for a libclang shared library, validates it,
// loads it into the process and binds the symbol registry against it.
// Each call produces an independent instance; loading the same file
// twice yields two instances with separate lifetimes. The caller owns
// the returned reference and must Release it.
func LoadLibrary(opts ...LoadOption) (*SharedLibrary, error) {
	cfg, err := resolveLoadConfig(opts...)
	if err != nil {
		return nil, err
	}

	c, err := discover(cfg)
	if err != nil {
		return nil, err
	}

	img, err := cfg.open(c.path)
	if err != nil {
		return nil, err
	}

	lib := &SharedLibrary{
		path:    c.path,
		version: c.version,
		img:     img,
		table:   bind(img, cfg.level, cfg.logger),
		logger:  cfg.logger,
	}
	lib.refs.Store(1)
	// Backstop for leaked references. Correct code pairs every retained
	// reference with a Release and never relies on the collector.
	runtime.SetFinalizer(lib, func(l *SharedLibrary) {
		_ = l.img.close()
	})

	cfg.logger.WithFields(logrus.Fields{
		"path":    c.path,
		"version": c.version.String(),
		"level":   cfg.level.String(),
	}).Debug("libclang loaded")
	return lib, nil
}

// retain takes one more reference. Nil-safe, so an empty Binding slot
// can be retained without a check.
func (l *SharedLibrary) retain() *SharedLibrary {
	if l == nil {
		return nil
	}
	if l.refs.Add(1) <= 1 {
		panic("clang: SharedLibrary used after its final Release")
	}
	return l
}

// Release drops one reference and closes the underlying image when the
// last one goes. Calling it more times than references were handed out
// panics. Nil-safe.
func (l *SharedLibrary) Release() {
	if l == nil {
		return
	}
	switch refs := l.refs.Add(-1); {
	case refs == 0:
		runtime.SetFinalizer(l, nil)
		if err := l.img.close(); err != nil {
			l.logger.WithError(err).Warn("failed to close libclang image")
		}
	case refs < 0:
		panic("clang: SharedLibrary released more times than retained")
	}
}

// Path returns the file the library was loaded from.
func (l *SharedLibrary) Path() string { return l.path }

// FileVersion returns the version tuple parsed from the file name at
// discovery time, empty when the name carried none. This is the name's
// claim, not the library's: ask ClangVersion for the real one.
func (l *SharedLibrary) FileVersion() Version {
	return append(Version(nil), l.version...)
}

// Level returns the API level the function table was bound at.
func (l *SharedLibrary) Level() APILevel { return l.table.level }

// API returns the bound function table. It stays valid until the last
// reference to the instance is released.
func (l *SharedLibrary) API() *FunctionTable { return l.table }

// IsAvailable reports whether the named symbol resolved at bind time.
func (l *SharedLibrary) IsAvailable(name string) bool {
	return l.table.IsAvailable(name)
}

// Entries returns the bind outcome of every registry entry.
func (l *SharedLibrary) Entries() []Entry { return l.table.Entries() }

// ClangVersion returns the version banner of the loaded library, for
// example "clang version 17.0.6".
func (l *SharedLibrary) ClangVersion() string {
	return l.table.ConsumeCXString(l.table.GetClangVersion())
}

// Binding is a slot holding at most one SharedLibrary for one goroutine.
// The zero value is an empty slot ready for use. A Binding itself must
// not be shared between goroutines; to move a library across, hand the
// instance over instead:
//
//	lib := b.Get()     // goroutine A: take a reference
//	ch <- lib          // hand it to goroutine B
//	other.Set(<-ch)    // goroutine B: install it, adopting the reference
//
// Get and Set keep the reference counts straight, so the library stays
// open for as long as either side still uses it.
type Binding struct {
	lib *SharedLibrary
}

// Load searches for, loads and binds a library, installing it into the
// slot and releasing any previous occupant. On error the slot keeps its
// current occupant.
func (b *Binding) Load(opts ...LoadOption) error {
	lib, err := LoadLibrary(opts...)
	if err != nil {
		return err
	}
	b.lib.Release()
	b.lib = lib
	return nil
}

// Unload empties the slot and releases the occupant. An already empty
// slot reports ErrNotLoaded.
func (b *Binding) Unload() error {
	if b.lib == nil {
		return ErrNotLoaded
	}
	b.lib.Release()
	b.lib = nil
	return nil
}

// IsLoaded reports whether the slot holds an instance.
func (b *Binding) IsLoaded() bool { return b.lib != nil }

// Get returns the occupant holding a new reference, or nil for an empty
// slot. The caller releases it when done.
func (b *Binding) Get() *SharedLibrary {
	return b.lib.retain()
}

// Set installs lib, adopting the caller's reference, and returns the
// previous occupant whose reference passes back to the caller. Set(nil)
// empties the slot. A typical replace is:
//
//	if prev := b.Set(lib); prev != nil {
//		prev.Release()
//	}
func (b *Binding) Set(lib *SharedLibrary) *SharedLibrary {
	prev := b.lib
	b.lib = lib
	return prev
}

// Must returns the occupant without touching reference counts and
// panics on an empty slot. For call sites that are unreachable before a
// successful Load.
func (b *Binding) Must() *SharedLibrary {
	if b.lib == nil {
		panic("clang: no libclang instance loaded; call Load or Set first")
	}
	return b.lib
}
