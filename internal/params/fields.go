package params

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindColor3
	KindColor4
	KindShader
)

type Widget string

const (
	WidgetSlider Widget = "slider"
	WidgetToggle Widget = "toggle"
	WidgetColor  Widget = "color"
	WidgetSelect Widget = "select"
)

// Field describes one tunable of a Controls value and gives typed access to it.
type Field struct {
	Name    string
	Kind    Kind
	Widget  Widget
	Min     float32
	Max     float32
	Step    float32
	Uniform string

	value reflect.Value
}

// Ptr returns a pointer to the live value: *int32, *float32, *bool, *Color3,
// *Color4 or *ShaderKind depending on Kind.
func (f Field) Ptr() interface{} {
	return f.value.Addr().Interface()
}

// Quantize snaps v onto the field's step grid and clamps it into [Min, Max].
// The store never calls this itself; it is the widget's job.
func (f Field) Quantize(v float32) float32 {
	if f.Step > 0 {
		n := math.Round(float64((v - f.Min) / f.Step))
		v = f.Min + float32(n)*f.Step
	}
	return mgl32.Clamp(v, f.Min, f.Max)
}

type fieldSchema struct {
	index   int
	name    string
	kind    Kind
	widget  Widget
	min     float32
	max     float32
	step    float32
	uniform string
}

var (
	schemaOnce sync.Once
	schema     []fieldSchema
	schemaErr  error
)

var (
	color3Type = reflect.TypeOf(Color3{})
	color4Type = reflect.TypeOf(Color4{})
	shaderType = reflect.TypeOf(ShaderKind(0))
)

func loadSchema() ([]fieldSchema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = parseSchema(reflect.TypeOf(Controls{}))
	})
	return schema, schemaErr
}

func parseSchema(t reflect.Type) ([]fieldSchema, error) {
	out := make([]fieldSchema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		label, ok := sf.Tag.Lookup("label")
		if !ok {
			continue
		}
		fs := fieldSchema{
			index:   i,
			name:    label,
			widget:  Widget(sf.Tag.Get("widget")),
			uniform: sf.Tag.Get("uniform"),
		}

		switch {
		case sf.Type == color3Type:
			fs.kind = KindColor3
		case sf.Type == color4Type:
			fs.kind = KindColor4
		case sf.Type == shaderType:
			fs.kind = KindShader
		case sf.Type.Kind() == reflect.Int32:
			fs.kind = KindInt
		case sf.Type.Kind() == reflect.Float32:
			fs.kind = KindFloat
		case sf.Type.Kind() == reflect.Bool:
			fs.kind = KindBool
		default:
			return nil, fmt.Errorf("field %s: unsupported type %s", sf.Name, sf.Type)
		}

		if r, ok := sf.Tag.Lookup("range"); ok {
			parts := strings.Split(r, ",")
			if len(parts) != 3 {
				return nil, fmt.Errorf("field %s: range needs min,max,step", sf.Name)
			}
			var nums [3]float32
			for j, p := range parts {
				v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
				if err != nil {
					return nil, fmt.Errorf("field %s: range: %w", sf.Name, err)
				}
				nums[j] = float32(v)
			}
			fs.min, fs.max, fs.step = nums[0], nums[1], nums[2]
			if fs.min > fs.max {
				return nil, fmt.Errorf("field %s: min %v above max %v", sf.Name, fs.min, fs.max)
			}
		} else if fs.widget == WidgetSlider {
			return nil, fmt.Errorf("field %s: slider without range", sf.Name)
		}
		out = append(out, fs)
	}
	return out, nil
}

// Fields returns the descriptors of every tunable in declaration order, bound
// to c. It panics if the Controls tags are malformed, which is a programming
// error caught by the package tests.
func (c *Controls) Fields() []Field {
	s, err := loadSchema()
	if err != nil {
		panic(err)
	}
	v := reflect.ValueOf(c).Elem()
	fields := make([]Field, len(s))
	for i, fs := range s {
		fields[i] = Field{
			Name:    fs.name,
			Kind:    fs.kind,
			Widget:  fs.widget,
			Min:     fs.min,
			Max:     fs.max,
			Step:    fs.step,
			Uniform: fs.uniform,
			value:   v.Field(fs.index),
		}
	}
	return fields
}

// Field looks a tunable up by its label.
func (c *Controls) Field(name string) (Field, bool) {
	for _, f := range c.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
