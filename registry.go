package gfcolor

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/kovidgoyal/gfcolor/nanocolor"
)

var _ = fmt.Print

var ErrAlreadyRegistered = errors.New("a different color space is already registered with this name")

type registryConfig struct {
	spaces              []ColorSpace
	parallelThreshold   int
	transformerCacheCap int
}

var defaultRegistryConfig = registryConfig{
	parallelThreshold:   16 * 1024,
	transformerCacheCap: 1024,
}

// RegistryOption configures a Registry created by NewRegistry.
type RegistryOption func(*registryConfig)

// WithColorSpaces registers additional named color spaces when the registry
// is created. Definitions whose name is already taken by a different
// definition are ignored and logged.
func WithColorSpaces(spaces ...ColorSpace) RegistryOption {
	return func(c *registryConfig) {
		c.spaces = append(c.spaces, spaces...)
	}
}

// WithParallelThreshold sets the number of pixels above which batch
// conversions are split across CPUs. Values below one disable splitting.
func WithParallelThreshold(pixels int) RegistryOption {
	return func(c *registryConfig) {
		c.parallelThreshold = IfElse(pixels < 1, int(^uint(0)>>1), pixels)
	}
}

// WithTransformerCacheSize limits the number of cached transformers. When
// the cache is full an arbitrary entry is evicted to make room. Values
// below one disable caching.
func WithTransformerCacheSize(n int) RegistryOption {
	return func(c *registryConfig) {
		c.transformerCacheCap = max(0, n)
	}
}

type registry_entry struct {
	cs       *nanocolor.ColorSpace
	sentinel bool
}

type transformer_key struct {
	src, dst space_key
	adapted  bool
}

// Registry interns named color spaces and caches the conversion matrices
// between pairs of spaces. It is safe for concurrent use. Create registries
// with NewRegistry, the zero value is not usable.
//
// The transformer cache is keyed by the structure of both spaces and holds
// at most WithTransformerCacheSize entries. Interned names are never
// dropped, every distinct name passed to Named stays in the registry.
type Registry struct {
	mutex               sync.Mutex
	named               map[string]registry_entry
	transformers        map[transformer_key]*Transformer
	transformerCacheCap int
	parallelThreshold   int
}

func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := defaultRegistryConfig
	for _, o := range opts {
		o(&cfg)
	}
	ans := &Registry{
		named:               make(map[string]registry_entry),
		transformers:        make(map[transformer_key]*Transformer),
		transformerCacheCap: cfg.transformerCacheCap,
		parallelThreshold:   cfg.parallelThreshold,
	}
	for _, cs := range cfg.spaces {
		if err := ans.Register(cs); err != nil {
			log_rejected_preload(cs, err)
		}
	}
	return ans
}

var default_registry = sync.OnceValue(func() *Registry { return NewRegistry() })

// DefaultRegistry returns the process wide registry used by the package
// level constructors.
func DefaultRegistry() *Registry { return default_registry() }

// Named returns the color space registered under name. The first request
// for a name that is neither built-in nor registered creates an identity
// space carrying that name, later requests return the same instance.
func (r *Registry) Named(name string) ColorSpace {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if e, found := r.named[name]; found {
		return ColorSpace{data: e.cs}
	}
	e := registry_entry{}
	if cs, found := nanocolor.Lookup(name); found {
		e.cs = cs
	} else {
		log_identity_fallback(name)
		e.cs, e.sentinel = nanocolor.NewIdentity(name), true
	}
	r.named[name] = e
	return ColorSpace{data: e.cs}
}

// IsConstructable reports whether name is built-in or was registered with
// Register.
func (r *Registry) IsConstructable(name string) bool {
	if _, found := nanocolor.Lookup(name); found {
		return true
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	e, found := r.named[name]
	return found && !e.sentinel
}

// Register makes cs available under its name. Registering a definition
// equal to the existing one is a no-op. A name that was previously resolved
// to the identity fallback is taken over by cs.
func (r *Registry) Register(cs ColorSpace) error {
	d := cs.Definition()
	name := d.Name()
	if b, found := nanocolor.Lookup(name); found {
		if nanocolor.Equal(b, d) {
			return nil
		}
		return fmt.Errorf("%w: %#v is built-in", ErrAlreadyRegistered, name)
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if e, found := r.named[name]; found && !e.sentinel {
		if nanocolor.Equal(e.cs, d) {
			return nil
		}
		return fmt.Errorf("%w: %#v", ErrAlreadyRegistered, name)
	}
	r.named[name] = registry_entry{cs: d}
	return nil
}

// Names returns the sorted names of all built-in and registered spaces.
func (r *Registry) Names() []string {
	ans := nanocolor.Names()
	r.mutex.Lock()
	for name, e := range r.named {
		if !e.sentinel {
			ans = append(ans, name)
		}
	}
	r.mutex.Unlock()
	slices.Sort(ans)
	return slices.Compact(ans)
}

func (r *Registry) transformer(src, dst ColorSpace, adapted bool) *Transformer {
	k := transformer_key{key_for(src), key_for(dst), adapted}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if t := r.transformers[k]; t != nil {
		return t
	}
	t := new_transformer(src.Definition(), dst.Definition(), adapted)
	if r.transformerCacheCap < 1 {
		return t
	}
	if len(r.transformers) >= r.transformerCacheCap {
		for victim := range r.transformers {
			delete(r.transformers, victim)
			break
		}
	}
	r.transformers[k] = t
	return t
}

// Transformer returns the, cached, transformer converting colors in src to
// dst through CIEXYZ.
func (r *Registry) Transformer(src, dst ColorSpace) *Transformer {
	return r.transformer(src, dst, false)
}

// AdaptedTransformer is like Transformer but adapts the white point of src
// to the white point of dst with the Bradford transform.
func (r *Registry) AdaptedTransformer(src, dst ColorSpace) *Transformer {
	return r.transformer(src, dst, true)
}

// Convert returns c converted into dst.
func (r *Registry) Convert(c Color, dst ColorSpace) Color {
	return Color{rgb: r.Transformer(c.space, dst).Transform(c.rgb), space: dst}
}

// ConvertAdapted returns c converted into dst with white point adaptation.
func (r *Registry) ConvertAdapted(c Color, dst ColorSpace) Color {
	return Color{rgb: r.AdaptedTransformer(c.space, dst).Transform(c.rgb), space: dst}
}
