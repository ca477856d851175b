package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestUniformCacheReturnsCachedLocation(t *testing.T) {
	cache := NewUniformCache(0)
	cache.locations["u_Time"] = 7

	if loc := cache.GetLocation("u_Time"); loc != 7 {
		t.Fatalf("expected cached location 7, got %d", loc)
	}
}

// Uniforms the program does not declare resolve to -1. Setting them must not
// reach the driver, which is what lets one parameter record feed every program.
func TestUniformCacheSkipsMissingUniforms(t *testing.T) {
	cache := NewUniformCache(0)
	for _, name := range []string{"u_OceanHeight", "u_CloudTrig", "u_SunColor", "u_CameraPos", "u_Model"} {
		cache.locations[name] = -1
	}

	cache.SetFloat("u_OceanHeight", 1)
	cache.SetInt("u_CloudTrig", 1)
	cache.SetVec4("u_SunColor", mgl32.Vec4{1, 1, 1, 1})
	cache.SetVec3("u_CameraPos", mgl32.Vec3{0, 0, 5})
	cache.SetMat4("u_Model", mgl32.Ident4())
}

func TestUniformCacheClear(t *testing.T) {
	cache := NewUniformCache(0)
	cache.locations["u_Color"] = 5

	cache.Clear()

	if len(cache.locations) != 0 {
		t.Error("Clear should empty the cache")
	}
}
