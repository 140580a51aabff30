package gfcolor

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kovidgoyal/gfcolor/nanocolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestRegistryInterning(t *testing.T) {
	r := NewRegistry()
	const workers = 32
	results := make([]ColorSpace, workers*2)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[2*i] = r.Named(SRGB)
			results[2*i+1] = r.Named("made up")
		}()
	}
	wg.Wait()
	for i := range workers {
		require.Same(t, results[0].Definition(), results[2*i].Definition())
		require.Same(t, results[1].Definition(), results[2*i+1].Definition())
	}
	require.Same(t, r.Named(SRGB).Definition(), NewNamedColorSpace(SRGB).Definition(), "built-ins are shared across registries")
}

func TestRegistryRegister(t *testing.T) {
	custom, err := NewColorSpaceFromPrimaries("custom", rec709_red, rec709_green, rec709_blue, d65, 2.2, 0)
	require.NoError(t, err)
	other, err := NewColorSpaceFromPrimaries("custom", rec709_red, rec709_green, rec709_blue, d65, 1.8, 0)
	require.NoError(t, err)

	r := NewRegistry()
	require.False(t, r.IsConstructable("custom"))
	fallback := r.Named("custom")
	require.Equal(t, 1., fallback.Gamma())

	require.NoError(t, r.Register(custom))
	require.True(t, r.IsConstructable("custom"))
	require.True(t, r.Named("custom").Equal(custom))
	require.NoError(t, r.Register(custom), "re-registering an equal definition is a no-op")
	require.ErrorIs(t, r.Register(other), ErrAlreadyRegistered)
	require.True(t, r.Named("custom").Equal(custom))

	require.NoError(t, r.Register(NewNamedColorSpace(SRGB)))
	fake, err := NewColorSpaceFromMatrix(SRGB, nanocolor.Identity, 2.4, 0.055)
	require.NoError(t, err)
	require.ErrorIs(t, r.Register(fake), ErrAlreadyRegistered)

	require.False(t, NewRegistry().IsConstructable("custom"), "registries are independent")
}

func TestRegistryOptions(t *testing.T) {
	custom, err := NewColorSpaceFromPrimaries("custom", rec709_red, rec709_green, rec709_blue, d65, 2.2, 0)
	require.NoError(t, err)
	r := NewRegistry(WithColorSpaces(custom), WithParallelThreshold(7))
	require.True(t, r.IsConstructable("custom"))
	require.Equal(t, 7, r.parallelThreshold)
	require.Equal(t, defaultRegistryConfig.parallelThreshold, NewRegistry().parallelThreshold)
	require.Greater(t, NewRegistry(WithParallelThreshold(0)).parallelThreshold, 1<<30)
	require.Equal(t, 3, NewRegistry(WithTransformerCacheSize(3)).transformerCacheCap)
	require.Equal(t, 0, NewRegistry(WithTransformerCacheSize(-1)).transformerCacheCap)
}

func TestRegistryNames(t *testing.T) {
	custom, err := NewColorSpaceFromPrimaries("zz custom", rec709_red, rec709_green, rec709_blue, d65, 2.2, 0)
	require.NoError(t, err)
	r := NewRegistry(WithColorSpaces(custom))
	r.Named("not listed")
	expected := append(nanocolor.Names(), "zz custom")
	if diff := cmp.Diff(expected, r.Names()); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
	for _, name := range []string{ACEScg, SRGB, LinearRec709, Identity, Raw, LinearCIEXYZD65} {
		assert.Contains(t, r.Names(), name)
	}
}

func TestRegistryTransformerCache(t *testing.T) {
	r := NewRegistry()
	srgb, acescg := r.Named(SRGB), r.Named(ACEScg)
	a := r.Transformer(srgb, acescg)
	require.Same(t, a, r.Transformer(srgb, acescg))
	require.NotSame(t, a, r.AdaptedTransformer(srgb, acescg))
	require.False(t, a.IsIdentity())
	require.True(t, r.Transformer(srgb, srgb).IsIdentity())
	require.Equal(t, SRGB, a.Source().Name())
	require.Equal(t, ACEScg, a.Destination().Name())

	// structurally equal spaces share a transformer
	dup, err := NewColorSpaceFromPrimaries(SRGB, rec709_red, rec709_green, rec709_blue, d65, 2.4, 0.055)
	require.NoError(t, err)
	require.Same(t, a, r.Transformer(dup, acescg))
}

func TestRegistryTransformerCacheIsBounded(t *testing.T) {
	r := NewRegistry(WithTransformerCacheSize(4))
	dst := r.Named(ACEScg)
	for i := range 32 {
		cs, err := NewColorSpaceFromPrimaries(fmt.Sprintf("asset %d", i), rec709_red, rec709_green, rec709_blue, d65, 2.2+float64(i)/100, 0)
		require.NoError(t, err)
		tr := r.Transformer(cs, dst)
		require.Same(t, tr, r.Transformer(cs, dst))
		require.LessOrEqual(t, len(r.transformers), 4)
	}
	require.Len(t, r.transformers, 4)

	uncached := NewRegistry(WithTransformerCacheSize(0))
	srgb := uncached.Named(SRGB)
	a := uncached.Transformer(srgb, dst)
	b := uncached.Transformer(srgb, dst)
	require.NotSame(t, a, b)
	require.Equal(t, a.Matrix(), b.Matrix())
	require.Empty(t, uncached.transformers)
}
