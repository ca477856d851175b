package shaders

import (
	"ProcPlanet/internal/params"
	"ProcPlanet/internal/renderer"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgram struct {
	name    string
	vs, fs  string
	deleted bool
}

func (p *fakeProgram) Name() string { return p.name }
func (p *fakeProgram) Use() {}
func (p *fakeProgram) SetFloat(string, float32) {}
func (p *fakeProgram) SetInt(string, int32) {}
func (p *fakeProgram) SetVec3(string, mgl32.Vec3) {}
func (p *fakeProgram) SetVec4(string, mgl32.Vec4) {}
func (p *fakeProgram) SetMat4(string, mgl32.Mat4) {}
func (p *fakeProgram) Delete() { p.deleted = true }

type fakeCompiler struct {
	built  []*fakeProgram
	failOn string
}

func (c *fakeCompiler) compile(name, vs, fs string) (renderer.Program, error) {
	if name == c.failOn {
		return nil, errors.New("boom")
	}
	p := &fakeProgram{name: name, vs: vs, fs: fs}
	c.built = append(c.built, p)
	return p, nil
}

func TestSourcesExpandIncludes(t *testing.T) {
	for _, name := range ProgramNames() {
		for _, stage := range []Stage{Vertex, Fragment} {
			src, err := Source(name, stage)
			require.NoError(t, err, name)
			assert.True(t, strings.HasPrefix(src, "#version 410 core"), "%s must start with #version", name)
			assert.NotContains(t, src, includeDirective, name)
			assert.Contains(t, src, "void main()", name)
		}
	}
}

func TestPlanetSourcesDeclareTerrainUniforms(t *testing.T) {
	vs, err := Source("planet", Vertex)
	require.NoError(t, err)
	fs, err := Source("planet", Fragment)
	require.NoError(t, err)

	for _, u := range []string{"u_OceanHeight", "u_TerrainExp", "u_TerrainSeed", "u_Octave"} {
		assert.Contains(t, vs, u)
	}
	for _, u := range []string{"u_OceanColor", "u_SnowColor", "u_SunPosition", "u_Texture"} {
		assert.Contains(t, fs, u)
	}
	assert.Contains(t, vs, "float fbm(")
}

func TestExpandDetectsCycles(t *testing.T) {
	root := fstest.MapFS{
		"a.glsl": {Data: []byte("#include \"b.glsl\"\n")},
		"b.glsl": {Data: []byte("#include \"a.glsl\"\n")},
	}
	_, err := expand(root, "a.glsl", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include cycle")
}

func TestExpandMissingInclude(t *testing.T) {
	root := fstest.MapFS{
		"a.glsl": {Data: []byte("void f() {}\n#include \"gone.glsl\"\n")},
	}
	_, err := expand(root, "a.glsl", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.glsl:2")
}

func TestBuildCreatesSixPrograms(t *testing.T) {
	c := &fakeCompiler{}
	bank, err := Build(c.compile)
	require.NoError(t, err)
	assert.Len(t, c.built, 6)

	cloud, err := bank.Cloud()
	require.NoError(t, err)
	assert.Equal(t, CloudProgram, cloud.Name())
}

func TestResolveEveryKind(t *testing.T) {
	bank, err := Build((&fakeCompiler{}).compile)
	require.NoError(t, err)

	for _, kind := range params.ShaderKinds() {
		p, err := bank.Resolve(kind)
		require.NoError(t, err, kind.String())
		assert.Equal(t, kind.String(), p.Name())
	}
}

func TestResolveUnknownKindIsError(t *testing.T) {
	bank, err := Build((&fakeCompiler{}).compile)
	require.NoError(t, err)

	_, err = bank.Resolve(params.ShaderKind(42))
	assert.ErrorIs(t, err, params.ErrUnknownShader)

	_, err = bank.Program("toon")
	assert.ErrorIs(t, err, ErrUnknownProgram)
}

func TestBuildFailureReleasesBuiltPrograms(t *testing.T) {
	c := &fakeCompiler{failOn: "perlin3D"}
	bank, err := Build(c.compile)
	require.Error(t, err)
	assert.Nil(t, bank)

	require.Len(t, c.built, 2)
	for _, p := range c.built {
		assert.True(t, p.deleted, "%s should be deleted", p.name)
	}
}

func TestBankDelete(t *testing.T) {
	c := &fakeCompiler{}
	bank, err := Build(c.compile)
	require.NoError(t, err)

	bank.Delete()
	for _, p := range c.built {
		assert.True(t, p.deleted)
	}
	_, err = bank.Resolve(params.ShaderPlanet)
	assert.ErrorIs(t, err, ErrUnknownProgram)
}
