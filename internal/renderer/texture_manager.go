package renderer

import (
	"ProcPlanet/internal/loader"
	"ProcPlanet/internal/logger"
	"image"
	"path/filepath"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// TextureStats provides debugging and profiling information
type TextureStats struct {
	TotalTextures  int
	CacheHits      int
	CacheMisses    int
	Fallbacks      int
	ActiveTextures int
}

// TextureManager loads textures by name from the assets directory, caches them
// and reference counts them so a scene reload reuses the environment map
// instead of uploading it again.
type TextureManager struct {
	dir             string
	textureCache    map[string]uint32 // name -> texture ID
	textureRefCount map[uint32]int
	textureNames    map[uint32]string
	mu              sync.RWMutex
	stats           TextureStats

	upload func(img *image.RGBA) uint32
	free   func(id uint32)
}

func NewTextureManager(dir string) *TextureManager {
	return &TextureManager{
		dir:             dir,
		textureCache:    make(map[string]uint32),
		textureRefCount: make(map[uint32]int),
		textureNames:    make(map[uint32]string),
		upload:          uploadTexture,
		free:            deleteTexture,
	}
}

// Acquire returns the texture for name, loading it on first use. When the file
// cannot be read a procedural environment map is uploaded in its place, so the
// only failure left is a missing GL context.
func (tm *TextureManager) Acquire(name string) uint32 {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if id, ok := tm.textureCache[name]; ok {
		tm.textureRefCount[id]++
		tm.stats.CacheHits++
		logger.Log.Debug("Texture cache hit",
			zap.String("name", name),
			zap.Uint32("textureID", id),
			zap.Int("refCount", tm.textureRefCount[id]))
		return id
	}
	tm.stats.CacheMisses++

	path := filepath.Join(tm.dir, name)
	img, err := loader.LoadImage(path)
	if err != nil {
		logger.Log.Warn("Texture unavailable, generating environment map",
			zap.String("path", path),
			zap.Error(err))
		img = loader.GenerateEnvMap(loader.DefaultEnvMapOptions())
		tm.stats.Fallbacks++
	}

	id := tm.upload(img)
	tm.textureCache[name] = id
	tm.textureRefCount[id] = 1
	tm.textureNames[id] = name
	tm.stats.TotalTextures++

	logger.Log.Info("Texture loaded and cached",
		zap.String("name", name),
		zap.Uint32("textureID", id),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()))
	return id
}

// Release decrements the reference count and frees the texture at zero.
func (tm *TextureManager) Release(id uint32) {
	if id == 0 {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	refCount, exists := tm.textureRefCount[id]
	if !exists {
		logger.Log.Warn("Attempted to release unknown texture", zap.Uint32("textureID", id))
		return
	}

	refCount--
	tm.textureRefCount[id] = refCount
	if refCount > 0 {
		return
	}

	tm.free(id)
	name := tm.textureNames[id]
	delete(tm.textureCache, name)
	delete(tm.textureRefCount, id)
	delete(tm.textureNames, id)
	logger.Log.Info("Texture freed", zap.Uint32("textureID", id), zap.String("name", name))
}

func (tm *TextureManager) Stats() TextureStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	stats := tm.stats
	stats.ActiveTextures = len(tm.textureRefCount)
	return stats
}

// Clear frees every texture regardless of reference counts.
func (tm *TextureManager) Clear() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for id := range tm.textureRefCount {
		tm.free(id)
	}
	tm.textureCache = make(map[string]uint32)
	tm.textureRefCount = make(map[uint32]int)
	tm.textureNames = make(map[uint32]string)
}

func uploadTexture(rgba *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return id
}

func deleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}
