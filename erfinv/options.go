// SPDX-License-Identifier: MIT

// Functional configuration for Evaluate. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions, which resolves setters into one Options value,
//   - ParseOptions, which converts a dynamic key/value bag into Options.
//
// Invalid values never panic: they are recorded and surfaced by Evaluate
// as ErrType naming the offending key.

package erfinv

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/katalvlaran/compute/dtype"
	"github.com/katalvlaran/compute/keypath"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCopy allocates a fresh output instead of writing in place.
	DefaultCopy = true

	// DefaultSep separates keys in WithPath.
	DefaultSep = keypath.DefaultSep

	// DefaultDType is the element type of allocated outputs, for matrices and
	// for typed collections alike.
	DefaultDType = dtype.Float64
)

// Option keys, as accepted by ParseOptions and named in errors.
const (
	KeyCopy     = "copy"
	KeyAccessor = "accessor"
	KeyPath     = "path"
	KeySep      = "sep"
	KeyDType    = "dtype"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
// Fields are unexported; Evaluate resolves them via gatherOptions.
type Options struct {
	copy     bool
	accessor Accessor
	path     string
	sep      string

	dtypeName string            // as requested, resolved by gatherOptions
	dtypeSet  bool              // WithDType was applied
	dt        dtype.DType       // DefaultDType unless dtypeSet
	alloc     dtype.Constructor // allocates buffers of dt

	logger *Logger
	errs   map[string]error // invalid values by key; last writer wins
}

// fail records err for key, replacing any earlier failure of the same key.
func (o *Options) fail(key string, err error) {
	if o.errs == nil {
		o.errs = make(map[string]error)
	}
	o.errs[key] = err
}

// clear drops a failure recorded for key.
func (o *Options) clear(key string) { delete(o.errs, key) }

// Copy reports whether a fresh output is allocated.
func (o Options) Copy() bool { return o.copy }

// Path returns the key path, or "" when unset.
func (o Options) Path() string { return o.path }

// Sep returns the key path separator.
func (o Options) Sep() string { return o.sep }

// DType returns the resolved output element type.
func (o Options) DType() dtype.DType { return o.dt }

// ---------- Constructors (WithX) ----------

// WithCopy selects between a fresh output (true) and in-place writes (false).
func WithCopy(enabled bool) Option {
	return func(o *Options) { o.copy = enabled }
}

// WithAccessor extracts each element's value through fn. A nil fn is invalid.
func WithAccessor(fn Accessor) Option {
	return func(o *Options) {
		if fn == nil {
			o.fail(KeyAccessor, fmt.Errorf("option %q: nil accessor: %w", KeyAccessor, ErrType))
			return
		}
		o.clear(KeyAccessor)
		o.accessor = fn
	}
}

// WithPath reads and writes each element at a nested key path. The path
// variant takes precedence over an accessor. An empty path is invalid.
func WithPath(path string) Option {
	return func(o *Options) {
		if path == "" {
			o.fail(KeyPath, fmt.Errorf("option %q: %w: %w", KeyPath, ErrType, keypath.ErrEmptyPath))
			return
		}
		o.clear(KeyPath)
		o.path = path
	}
}

// WithSep sets the key path separator. An empty separator is invalid.
func WithSep(sep string) Option {
	return func(o *Options) {
		if sep == "" {
			o.fail(KeySep, fmt.Errorf("option %q: empty separator: %w", KeySep, ErrType))
			return
		}
		o.clear(KeySep)
		o.sep = sep
	}
}

// WithDType names the output element type, e.g. "int8" or "float32".
// The name is resolved when options are gathered.
func WithDType(name string) Option {
	return func(o *Options) {
		o.dtypeName = name
		o.dtypeSet = true
	}
}

// WithLogger routes debug records to l. nil restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.logger = NoopLogger()
			return
		}
		o.logger = &Logger{Logger: l}
	}
}

// ---------- Resolution ----------

func defaultOptions() Options {
	return Options{
		copy:      DefaultCopy,
		sep:       DefaultSep,
		dtypeName: DefaultDType.String(),
		logger:    NoopLogger(),
	}
}

// gatherOptions applies opts in order and validates the result.
// Errors: ErrType naming each invalid key; an unknown dtype also matches
// dtype.ErrUnknownDType.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	alloc, err := dtype.Lookup(o.dtypeName)
	if err != nil {
		o.fail(KeyDType, fmt.Errorf("option %q: %w: %w", KeyDType, ErrType, err))
		alloc = dtype.MustLookup(DefaultDType.String())
	}
	o.alloc, o.dt = alloc, alloc(0).DType()
	if len(o.errs) == 0 {
		return o, nil
	}

	errs := make([]error, 0, len(o.errs))
	for _, key := range slices.Sorted(maps.Keys(o.errs)) {
		errs = append(errs, o.errs[key])
	}

	return o, errors.Join(errs...)
}

// ParseOptions converts a dynamic options bag into Options. Recognized keys
// are copy (bool), accessor (Accessor or func(any, int) any), path (string),
// sep (string) and dtype (string or dtype.DType).
// Errors: ErrType naming the first offending key in sorted order.
func ParseOptions(bag map[string]any) ([]Option, error) {
	if len(bag) == 0 {
		return nil, nil
	}

	opts := make([]Option, 0, len(bag))
	for _, key := range slices.Sorted(maps.Keys(bag)) {
		opt, err := parseOption(key, bag[key])
		if err != nil {
			return nil, fmt.Errorf("ParseOptions: %w", err)
		}
		opts = append(opts, opt)
	}

	return opts, nil
}

func parseOption(key string, v any) (Option, error) {
	switch key {
	case KeyCopy:
		if b, ok := v.(bool); ok {
			return WithCopy(b), nil
		}
	case KeyAccessor:
		switch fn := v.(type) {
		case Accessor:
			if fn != nil {
				return WithAccessor(fn), nil
			}
		case func(any, int) any:
			if fn != nil {
				return WithAccessor(fn), nil
			}
		}
	case KeyPath:
		if s, ok := v.(string); ok {
			return WithPath(s), nil
		}
	case KeySep:
		if s, ok := v.(string); ok {
			return WithSep(s), nil
		}
	case KeyDType:
		switch dt := v.(type) {
		case string:
			return WithDType(dt), nil
		case dtype.DType:
			return WithDType(dt.String()), nil
		}
	default:
		return nil, fmt.Errorf("unknown option %q: %w", key, ErrType)
	}

	return nil, fmt.Errorf("option %q: unsupported value %T: %w", key, v, ErrType)
}
