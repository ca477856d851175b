package renderer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTextures struct {
	next     uint32
	uploaded []image.Rectangle
	freed    []uint32
}

func newTestTextureManager(dir string) (*TextureManager, *fakeTextures) {
	fake := &fakeTextures{next: 1}
	tm := NewTextureManager(dir)
	tm.upload = func(img *image.RGBA) uint32 {
		fake.uploaded = append(fake.uploaded, img.Rect)
		id := fake.next
		fake.next++
		return id
	}
	tm.free = func(id uint32) { fake.freed = append(fake.freed, id) }
	return tm, fake
}

func TestTextureManagerCachesByName(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "envmap.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	tm, fake := newTestTextureManager(dir)
	a := tm.Acquire("envmap.png")
	b := tm.Acquire("envmap.png")

	assert.Equal(t, a, b)
	require.Len(t, fake.uploaded, 1)
	assert.Equal(t, image.Rect(0, 0, 8, 4), fake.uploaded[0])

	stats := tm.Stats()
	assert.Equal(t, 1, stats.CacheHits)
	assert.Equal(t, 1, stats.CacheMisses)
	assert.Equal(t, 0, stats.Fallbacks)
}

func TestTextureManagerFallsBackToGeneratedMap(t *testing.T) {
	tm, fake := newTestTextureManager(t.TempDir())
	id := tm.Acquire("envmap.jpg")

	assert.NotZero(t, id)
	require.Len(t, fake.uploaded, 1)
	assert.Equal(t, 1, tm.Stats().Fallbacks)
}

func TestTextureManagerRelease(t *testing.T) {
	tm, fake := newTestTextureManager(t.TempDir())
	id := tm.Acquire("a.jpg")
	tm.Acquire("a.jpg")

	tm.Release(id)
	assert.Empty(t, fake.freed)
	assert.Equal(t, 1, tm.Stats().ActiveTextures)

	tm.Release(id)
	assert.Equal(t, []uint32{id}, fake.freed)
	assert.Equal(t, 0, tm.Stats().ActiveTextures)

	// unknown and zero ids are ignored
	tm.Release(id)
	tm.Release(0)
	assert.Len(t, fake.freed, 1)
}

func TestTextureManagerClear(t *testing.T) {
	tm, fake := newTestTextureManager(t.TempDir())
	tm.Acquire("a.jpg")
	tm.Acquire("b.jpg")
	tm.Clear()

	assert.Len(t, fake.freed, 2)
	assert.Equal(t, 0, tm.Stats().ActiveTextures)
}
