package params

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderKindRoundTrip(t *testing.T) {
	names := []string{"lambert", "funny", "perlin3D", "perlin3D_BlinnPhong", "planet"}
	kinds := ShaderKinds()
	require.Len(t, kinds, len(names))

	for i, k := range kinds {
		assert.Equal(t, names[i], k.String())
		parsed, err := ParseShaderKind(names[i])
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.True(t, k.Valid())
	}
}

func TestParseShaderKindUnknown(t *testing.T) {
	_, err := ParseShaderKind("cloud")
	assert.True(t, errors.Is(err, ErrUnknownShader))

	bad := ShaderKind(42)
	assert.False(t, bad.Valid())
	assert.Equal(t, "ShaderKind(42)", bad.String())
}

func TestDefaults(t *testing.T) {
	c := NewControls()
	assert.Equal(t, int32(8), c.Tesselations)
	assert.Equal(t, ShaderPlanet, c.Shader)
	assert.True(t, c.CloudTrig)
	assert.False(t, c.FunnyTrig)
	assert.Equal(t, Color4{42, 159, 207, 1}, c.OceanColor)
	assert.InDelta(t, 0.63, c.TerrainExp, 1e-6)
}

func TestSchemaParses(t *testing.T) {
	s, err := parseSchema(reflect.TypeOf(Controls{}))
	require.NoError(t, err)
	assert.Len(t, s, reflect.TypeOf(Controls{}).NumField())
}

func TestSchemaRejectsSliderWithoutRange(t *testing.T) {
	type broken struct {
		X float32 `label:"X" widget:"slider"`
	}
	_, err := parseSchema(reflect.TypeOf(broken{}))
	assert.Error(t, err)
}

func TestSchemaRejectsInvertedRange(t *testing.T) {
	type broken struct {
		X float32 `label:"X" widget:"slider" range:"2,1,0.1"`
	}
	_, err := parseSchema(reflect.TypeOf(broken{}))
	assert.Error(t, err)
}

func TestFieldMetadata(t *testing.T) {
	c := NewControls()

	f, ok := c.Field("tesselations")
	require.True(t, ok)
	assert.Equal(t, KindInt, f.Kind)
	assert.Equal(t, WidgetSlider, f.Widget)
	assert.Equal(t, float32(0), f.Min)
	assert.Equal(t, float32(12), f.Max)
	assert.Equal(t, float32(1), f.Step)

	f, ok = c.Field("OceanHeight")
	require.True(t, ok)
	assert.Equal(t, KindFloat, f.Kind)
	assert.Equal(t, float32(1.5), f.Max)
	assert.Equal(t, "u_OceanHeight", f.Uniform)

	f, ok = c.Field("Shader")
	require.True(t, ok)
	assert.Equal(t, KindShader, f.Kind)
	assert.Equal(t, WidgetSelect, f.Widget)

	_, ok = c.Field("Missing")
	assert.False(t, ok)
}

func TestFieldPtrWritesAreVisible(t *testing.T) {
	c := NewControls()
	f, _ := c.Field("OceanHeight")
	*f.Ptr().(*float32) = 0.25
	assert.Equal(t, float32(0.25), c.OceanHeight)

	f, _ = c.Field("CloudTrig")
	*f.Ptr().(*bool) = false
	assert.False(t, c.CloudTrig)
}

func TestOutOfRangeWritesAreKept(t *testing.T) {
	c := NewControls()
	f, _ := c.Field("OceanHeight")
	*f.Ptr().(*float32) = 99
	assert.Equal(t, float32(99), c.OceanHeight)
}

func TestQuantize(t *testing.T) {
	c := NewControls()
	f, _ := c.Field("SunPositionX")
	assert.InDelta(t, 0.3, f.Quantize(0.27), 1e-6)
	assert.Equal(t, float32(1), f.Quantize(5))
	assert.Equal(t, float32(-1), f.Quantize(-5))

	f, _ = c.Field("tesselations")
	assert.Equal(t, float32(4), f.Quantize(3.6))
}

type recordingSetter struct {
	floats map[string]float32
	ints   map[string]int32
	vecs   map[string]mgl32.Vec4
}

func newRecordingSetter() *recordingSetter {
	return &recordingSetter{
		floats: map[string]float32{},
		ints:   map[string]int32{},
		vecs:   map[string]mgl32.Vec4{},
	}
}

func (r *recordingSetter) SetFloat(name string, v float32)   { r.floats[name] = v }
func (r *recordingSetter) SetInt(name string, v int32)       { r.ints[name] = v }
func (r *recordingSetter) SetVec4(name string, v mgl32.Vec4) { r.vecs[name] = v }

func TestApplyUniforms(t *testing.T) {
	c := NewControls()
	rec := newRecordingSetter()
	c.ApplyUniforms(rec)

	assert.Equal(t, float32(1.0), rec.floats["u_OceanHeight"])
	assert.Equal(t, int32(1), rec.ints["u_CloudTrig"])
	assert.Equal(t, int32(0), rec.ints["u_FunnyTrig"])
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, rec.vecs["u_Color"])

	ocean := rec.vecs["u_OceanColor"]
	assert.InDelta(t, 42.0/255, ocean[0], 1e-6)
	assert.InDelta(t, 1.0, ocean[3], 1e-6)

	assert.Equal(t, mgl32.Vec4{1, 1, 1, 0}, rec.vecs["u_SunPosition"])
	_, hasShader := rec.ints["Shader"]
	assert.False(t, hasShader)
}

func TestColorUnitRoundTrip(t *testing.T) {
	var c Color4
	c.SetUnit([4]float32{1, 0.5, 0, 0.25})
	assert.InDelta(t, 255, c[0], 1e-4)
	assert.InDelta(t, 127.5, c[1], 1e-4)
	assert.InDelta(t, 0.25, c[3], 1e-6)

	u := Color3{0, 255, 255}.Unit()
	assert.Equal(t, [3]float32{0, 1, 1}, u)
}
