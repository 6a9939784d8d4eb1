package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blobs(t *testing.T) map[string]Blob {
	t.Helper()
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	return map[string]Blob{
		"disk":   d,
		"memory": NewMemory(),
	}
}

func TestBlobRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, b := range blobs(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := b.Get(ctx, "items")
			require.NoError(t, err)
			assert.False(t, ok, "expected absent key")

			require.NoError(t, b.Set(ctx, "items", []byte(`{"a":1}`)))
			got, ok, err := b.Get(ctx, "items")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `{"a":1}`, string(got))

			require.NoError(t, b.Set(ctx, "items", []byte(`{}`)))
			got, _, err = b.Get(ctx, "items")
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(got))

			require.NoError(t, b.Remove(ctx, "items"))
			_, ok, err = b.Get(ctx, "items")
			require.NoError(t, err)
			assert.False(t, ok)

			assert.NoError(t, b.Remove(ctx, "items"), "removing a missing key is not an error")
		})
	}
}

func TestBlobHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, b := range blobs(t) {
		t.Run(name, func(t *testing.T) {
			err := b.Set(ctx, "items", []byte(`{}`))
			assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
		})
	}
}

func TestDiskRejectsBadKeys(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"", "../escape", "a/b", ".tmp", ".."} {
		err := d.Set(context.Background(), key, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestDiskPersistsAcrossInstances(t *testing.T) {
	base := t.TempDir()
	ctx := context.Background()

	first, err := NewDisk(base)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "items", []byte("hello")))

	second, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	got, ok, err := second.Get(ctx, "items")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", string(got))
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	v := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", v))
	v[0] = 'z'
	got, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestStaticConfigDefaults(t *testing.T) {
	c := StaticConfig{Path: "/tmp/x"}
	assert.Equal(t, DefaultKey, c.Key())
	assert.Equal(t, DefaultLogLevel, c.LogLevel())
	assert.Equal(t, DefaultLocale, c.Locale())
}
