package gui

import (
	"ProcPlanet/internal/params"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name string
	runs int
	err  error
}

func (c *fakeCommand) Name() string { return c.name }

func (c *fakeCommand) Execute() error {
	c.runs++
	return c.err
}

// scriptedWidgets records every widget drawn and applies scripted edits.
type scriptedWidgets struct {
	drawn     []string
	panels    []string
	closed    map[string]bool
	press     map[string]bool
	floats    map[string]float32
	ints      map[string]int32
	bools     map[string]bool
	colors3   map[string][3]float32
	colors4   map[string][4]float32
	combo     map[string]int32
	comboSeen []string
}

func newScriptedWidgets() *scriptedWidgets {
	return &scriptedWidgets{
		closed:  map[string]bool{},
		press:   map[string]bool{},
		floats:  map[string]float32{},
		ints:    map[string]int32{},
		bools:   map[string]bool{},
		colors3: map[string][3]float32{},
		colors4: map[string][4]float32{},
		combo:   map[string]int32{},
	}
}

func (w *scriptedWidgets) BeginWindow(string) bool { return true }

func (w *scriptedWidgets) EndWindow() {}

func (w *scriptedWidgets) BeginPanel(title string) bool {
	w.panels = append(w.panels, title)
	return !w.closed[title]
}

func (w *scriptedWidgets) EndPanel() {}

func (w *scriptedWidgets) SliderInt(label string, v *int32, min, max int32) bool {
	w.drawn = append(w.drawn, label)
	if n, ok := w.ints[label]; ok {
		*v = n
		return true
	}
	return false
}

func (w *scriptedWidgets) SliderFloat(label string, v *float32, min, max float32) bool {
	w.drawn = append(w.drawn, label)
	if f, ok := w.floats[label]; ok {
		*v = f
		return true
	}
	return false
}

func (w *scriptedWidgets) Checkbox(label string, v *bool) bool {
	w.drawn = append(w.drawn, label)
	if b, ok := w.bools[label]; ok {
		*v = b
		return true
	}
	return false
}

func (w *scriptedWidgets) ColorEdit3(label string, c *[3]float32) bool {
	w.drawn = append(w.drawn, label)
	if u, ok := w.colors3[label]; ok {
		*c = u
		return true
	}
	return false
}

func (w *scriptedWidgets) ColorEdit4(label string, c *[4]float32) bool {
	w.drawn = append(w.drawn, label)
	if u, ok := w.colors4[label]; ok {
		*c = u
		return true
	}
	return false
}

func (w *scriptedWidgets) Combo(label string, current *int32, items []string) bool {
	w.drawn = append(w.drawn, label)
	w.comboSeen = items
	if i, ok := w.combo[label]; ok {
		*current = i
		return true
	}
	return false
}

func (w *scriptedWidgets) Button(label string) bool {
	w.drawn = append(w.drawn, label)
	return w.press[label]
}

func (w *scriptedWidgets) Text(string) {}

func newTestSurface(t *testing.T, controls *params.Controls, cmd *fakeCommand) *Surface {
	t.Helper()
	s, err := NewSurface("Controls", controls, DefaultLayout(), cmd)
	require.NoError(t, err)
	return s
}

func TestDefaultLayoutCoversEveryField(t *testing.T) {
	controls := params.NewControls()
	s := newTestSurface(t, controls, &fakeCommand{name: "Load Scene"})

	w := newScriptedWidgets()
	require.NoError(t, s.Draw(w))

	var names []string
	for _, f := range controls.Fields() {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, append(names, "Load Scene"), w.drawn)
	assert.Equal(t, []string{"Planet Setting", "Sun Setting", "Other Setting"}, w.panels)
	assert.Equal(t, "tesselations", w.drawn[0])
	assert.Equal(t, "Load Scene", w.drawn[1])
}

func TestNewSurfaceRejectsUnknownEntries(t *testing.T) {
	controls := params.NewControls()

	_, err := NewSurface("x", controls, []Entry{FieldEntry("Gravity")})
	assert.Error(t, err)

	_, err = NewSurface("x", controls, []Entry{CommandEntry("Load Scene")})
	assert.Error(t, err)

	_, err = NewSurface("x", controls, []Entry{PanelEntry("Sun Setting", "SunPositionW")})
	assert.Error(t, err)
}

func TestButtonRunsCommand(t *testing.T) {
	cmd := &fakeCommand{name: "Load Scene"}
	s := newTestSurface(t, params.NewControls(), cmd)

	w := newScriptedWidgets()
	w.press["Load Scene"] = true
	require.NoError(t, s.Draw(w))
	assert.Equal(t, 1, cmd.runs)

	require.NoError(t, s.Draw(newScriptedWidgets()))
	assert.Equal(t, 1, cmd.runs)
}

func TestCommandErrorIsReported(t *testing.T) {
	cmd := &fakeCommand{name: "Load Scene", err: errors.New("no GPU memory")}
	s := newTestSurface(t, params.NewControls(), cmd)

	w := newScriptedWidgets()
	w.press["Load Scene"] = true
	err := s.Draw(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, cmd.err)
	// the rest of the surface is still drawn
	assert.Contains(t, w.drawn, "FloatAmp")
}

func TestSliderEditsAreQuantized(t *testing.T) {
	controls := params.NewControls()
	s := newTestSurface(t, controls, &fakeCommand{name: "Load Scene"})

	w := newScriptedWidgets()
	w.floats["OceanHeight"] = 0.734
	w.floats["Octave"] = 42
	w.ints["tesselations"] = 5
	require.NoError(t, s.Draw(w))

	assert.InDelta(t, 0.73, controls.OceanHeight, 1e-5)
	assert.Equal(t, float32(10), controls.Octave)
	assert.Equal(t, int32(5), controls.Tesselations)
}

func TestColorAndToggleEdits(t *testing.T) {
	controls := params.NewControls()
	s := newTestSurface(t, controls, &fakeCommand{name: "Load Scene"})

	w := newScriptedWidgets()
	w.colors3["Color"] = [3]float32{0, 1, 0}
	w.colors4["OceanColor"] = [4]float32{1, 0, 0, 0.5}
	w.bools["CloudTrig"] = false
	require.NoError(t, s.Draw(w))

	assert.Equal(t, params.Color3{0, 255, 0}, controls.Color)
	assert.Equal(t, params.Color4{255, 0, 0, 0.5}, controls.OceanColor)
	assert.False(t, controls.CloudTrig)
}

func TestShaderComboSelectsKind(t *testing.T) {
	controls := params.NewControls()
	s := newTestSurface(t, controls, &fakeCommand{name: "Load Scene"})

	w := newScriptedWidgets()
	w.combo["Shader"] = int32(params.ShaderLambert)
	require.NoError(t, s.Draw(w))

	assert.Equal(t, params.ShaderLambert, controls.Shader)
	assert.Equal(t, []string{"lambert", "funny", "perlin3D", "perlin3D_BlinnPhong", "planet"}, w.comboSeen)
}

func TestClosedPanelSkipsContents(t *testing.T) {
	s := newTestSurface(t, params.NewControls(), &fakeCommand{name: "Load Scene"})

	w := newScriptedWidgets()
	w.closed["Sun Setting"] = true
	require.NoError(t, s.Draw(w))

	assert.NotContains(t, w.drawn, "SunIntensity")
	assert.Contains(t, w.drawn, "OceanColor")
}

func TestStatsAveragesOverWindow(t *testing.T) {
	now := time.Unix(0, 0)
	s := NewStats()
	s.now = func() time.Time { return now }

	for i := 0; i < 30; i++ {
		s.Begin()
		now = now.Add(4 * time.Millisecond)
		s.End()
		now = now.Add(16 * time.Millisecond) // rest of a 20ms frame
	}

	// the first window closes after 26 frames spanning 504ms
	assert.InDelta(t, 26/0.504, s.FPS(), 0.01)
	assert.Equal(t, 4*time.Millisecond, s.FrameTime())
	assert.Contains(t, s.String(), "FPS")
}
