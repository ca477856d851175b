// Package gui draws the parameter panel and the frame stats overlay.
//
// The layout is declarative: a Surface is a list of entries naming Controls
// fields, commands and collapsible panels. Drawing goes through the Widgets
// interface so the same layout can be exercised without a window.
package gui

import (
	"ProcPlanet/internal/params"
	"fmt"
)

// Command is an action bound to a button, such as rebuilding the scene.
type Command interface {
	Name() string
	Execute() error
}

// Entry is one row of the surface.
type Entry struct {
	Field   string  // Controls label, for value widgets
	Command string  // Command name, for buttons
	Panel   string  // folder title
	Entries []Entry // folder contents
}

func FieldEntry(name string) Entry { return Entry{Field: name} }

func CommandEntry(name string) Entry { return Entry{Command: name} }

func PanelEntry(title string, names ...string) Entry {
	entries := make([]Entry, len(names))
	for i, n := range names {
		entries[i] = FieldEntry(n)
	}
	return Entry{Panel: title, Entries: entries}
}

// DefaultLayout is the viewer's control panel.
func DefaultLayout() []Entry {
	return []Entry{
		FieldEntry("tesselations"),
		CommandEntry("Load Scene"),
		PanelEntry("Planet Setting",
			"OceanColor", "SnowColor", "CoastColor", "MountainColor", "FoliageColor", "TropicalColor",
			"OceanHeight", "CoastHeight", "SnowHeight", "PolarCapsAttitude", "TerrainExp", "TerrainSeed", "Octave"),
		PanelEntry("Sun Setting",
			"SunPositionX", "SunPositionY", "SunPositionZ", "SunColor", "SunIntensity"),
		FieldEntry("Shader"),
		FieldEntry("CloudTrig"),
		FieldEntry("FunnyTrig"),
		FieldEntry("FloatSpeed"),
		PanelEntry("Other Setting",
			"Color", "Color2", "ScaleSpeed", "RotateSpeed", "FloatAmp"),
	}
}

// Surface binds a layout to a Controls value and a set of commands.
type Surface struct {
	Title    string
	controls *params.Controls
	layout   []Entry
	commands map[string]Command
	fields   map[string]params.Field
	shaders  []string
}

// NewSurface checks that every entry of layout resolves to a field or a
// command.
func NewSurface(title string, controls *params.Controls, layout []Entry, commands ...Command) (*Surface, error) {
	s := &Surface{
		Title:    title,
		controls: controls,
		layout:   layout,
		commands: make(map[string]Command, len(commands)),
		fields:   make(map[string]params.Field),
	}
	for _, c := range commands {
		s.commands[c.Name()] = c
	}
	for _, f := range controls.Fields() {
		s.fields[f.Name] = f
	}
	for _, k := range params.ShaderKinds() {
		s.shaders = append(s.shaders, k.String())
	}
	if err := s.check(layout); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Surface) check(entries []Entry) error {
	for _, e := range entries {
		switch {
		case e.Panel != "":
			if err := s.check(e.Entries); err != nil {
				return fmt.Errorf("%s: %w", e.Panel, err)
			}
		case e.Command != "":
			if _, ok := s.commands[e.Command]; !ok {
				return fmt.Errorf("no command %q", e.Command)
			}
		default:
			if _, ok := s.fields[e.Field]; !ok {
				return fmt.Errorf("no field %q", e.Field)
			}
		}
	}
	return nil
}

// Draw emits the widgets for one frame and runs any command whose button was
// pressed. Command errors are returned after the whole surface is drawn.
func (s *Surface) Draw(w Widgets) error {
	var firstErr error
	if !w.BeginWindow(s.Title) {
		w.EndWindow()
		return nil
	}
	s.draw(w, s.layout, &firstErr)
	w.EndWindow()
	return firstErr
}

func (s *Surface) draw(w Widgets, entries []Entry, firstErr *error) {
	for _, e := range entries {
		switch {
		case e.Panel != "":
			if w.BeginPanel(e.Panel) {
				s.draw(w, e.Entries, firstErr)
				w.EndPanel()
			}
		case e.Command != "":
			if w.Button(e.Command) {
				if err := s.commands[e.Command].Execute(); err != nil && *firstErr == nil {
					*firstErr = fmt.Errorf("%s: %w", e.Command, err)
				}
			}
		default:
			s.drawField(w, s.fields[e.Field])
		}
	}
}

func (s *Surface) drawField(w Widgets, f params.Field) {
	switch p := f.Ptr().(type) {
	case *int32:
		w.SliderInt(f.Name, p, int32(f.Min), int32(f.Max))
	case *float32:
		if w.SliderFloat(f.Name, p, f.Min, f.Max) {
			*p = f.Quantize(*p)
		}
	case *bool:
		w.Checkbox(f.Name, p)
	case *params.Color3:
		u := p.Unit()
		if w.ColorEdit3(f.Name, &u) {
			p.SetUnit(u)
		}
	case *params.Color4:
		u := p.Unit()
		if w.ColorEdit4(f.Name, &u) {
			p.SetUnit(u)
		}
	case *params.ShaderKind:
		current := int32(*p)
		if w.Combo(f.Name, &current, s.shaders) {
			*p = params.ShaderKind(current)
		}
	}
}
