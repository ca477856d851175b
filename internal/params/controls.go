package params

// Controls is the Parameter Record: every user tunable of the viewer. It is
// created once, owned by the application and handed by pointer to both the UI
// surface and the frame driver. Writes are not validated; widgets clamp with
// the range declared in the struct tags.
//
// Tags:
//
//	label   name shown in the UI and used for lookups
//	widget  slider | toggle | color | select
//	range   "min,max,step" for sliders
//	uniform GLSL uniform receiving the value, if any
type Controls struct {
	Tesselations int32 `label:"tesselations" widget:"slider" range:"0,12,1"`

	Color  Color3 `label:"Color" widget:"color" uniform:"u_Color"`
	Color2 Color3 `label:"Color2" widget:"color" uniform:"u_Color2"`

	Shader    ShaderKind `label:"Shader" widget:"select"`
	CloudTrig bool       `label:"CloudTrig" widget:"toggle" uniform:"u_CloudTrig"`
	FunnyTrig bool       `label:"FunnyTrig" widget:"toggle" uniform:"u_FunnyTrig"`

	ScaleSpeed  float32 `label:"ScaleSpeed" widget:"slider" range:"0.1,10,0.1" uniform:"u_ScaleSpeed"`
	RotateSpeed float32 `label:"RotateSpeed" widget:"slider" range:"0,2,0.1" uniform:"u_RotateSpeed"`
	Octave      float32 `label:"Octave" widget:"slider" range:"0,10,1" uniform:"u_Octave"`
	FloatSpeed  float32 `label:"FloatSpeed" widget:"slider" range:"0,10,0.1" uniform:"u_FloatSpeed"`
	FloatAmp    float32 `label:"FloatAmp" widget:"slider" range:"0,10,0.1" uniform:"u_FloatAmp"`

	OceanColor        Color4  `label:"OceanColor" widget:"color" uniform:"u_OceanColor"`
	OceanHeight       float32 `label:"OceanHeight" widget:"slider" range:"0,1.5,0.01" uniform:"u_OceanHeight"`
	CoastColor        Color4  `label:"CoastColor" widget:"color" uniform:"u_CoastColor"`
	CoastHeight       float32 `label:"CoastHeight" widget:"slider" range:"0,0.04,0.01" uniform:"u_CoastHeight"`
	FoliageColor      Color4  `label:"FoliageColor" widget:"color" uniform:"u_FoliageColor"`
	TropicalColor     Color4  `label:"TropicalColor" widget:"color" uniform:"u_TropicalColor"`
	MountainColor     Color4  `label:"MountainColor" widget:"color" uniform:"u_MountainColor"`
	SnowColor         Color4  `label:"SnowColor" widget:"color" uniform:"u_SnowColor"`
	SnowHeight        float32 `label:"SnowHeight" widget:"slider" range:"0,2,0.01" uniform:"u_SnowHeight"`
	PolarCapsAttitude float32 `label:"PolarCapsAttitude" widget:"slider" range:"0,2,0.01" uniform:"u_PolarCapsAttitude"`
	TerrainExp        float32 `label:"TerrainExp" widget:"slider" range:"0,1,0.01" uniform:"u_TerrainExp"`
	TerrainSeed       float32 `label:"TerrainSeed" widget:"slider" range:"0,100,1" uniform:"u_TerrainSeed"`

	SunPositionX float32 `label:"SunPositionX" widget:"slider" range:"-1,1,0.1" uniform:"u_SunPositionX"`
	SunPositionY float32 `label:"SunPositionY" widget:"slider" range:"-1,1,0.1" uniform:"u_SunPositionY"`
	SunPositionZ float32 `label:"SunPositionZ" widget:"slider" range:"-1,1,0.1" uniform:"u_SunPositionZ"`
	SunColor     Color4  `label:"SunColor" widget:"color" uniform:"u_SunColor"`
	SunIntensity float32 `label:"SunIntensity" widget:"slider" range:"0,2,0.1" uniform:"u_SunIntensity"`
}

// NewControls returns the record with the viewer's startup defaults.
func NewControls() *Controls {
	return &Controls{
		Tesselations: 8,

		Color:  Color3{255, 0, 0},
		Color2: Color3{0, 255, 255},

		Shader:    ShaderPlanet,
		CloudTrig: true,
		FunnyTrig: false,

		ScaleSpeed:  1.0,
		RotateSpeed: 1.0,
		Octave:      7.0,
		FloatSpeed:  1.0,
		FloatAmp:    1.0,

		OceanColor:        Color4{42, 159, 207, 1.0},
		OceanHeight:       1.0,
		CoastColor:        Color4{233, 200, 143, 1.0},
		CoastHeight:       0.02,
		FoliageColor:      Color4{0, 89, 27, 1.0},
		TropicalColor:     Color4{168, 220, 15, 1.0},
		MountainColor:     Color4{77, 56, 6, 1.0},
		SnowColor:         Color4{255, 255, 255, 1.0},
		SnowHeight:        1.10,
		PolarCapsAttitude: 1.1,
		TerrainExp:        0.63,
		TerrainSeed:       0.0,

		SunPositionX: 1.0,
		SunPositionY: 1.0,
		SunPositionZ: 1.0,
		SunColor:     Color4{255, 255, 232, 1.0},
		SunIntensity: 1.0,
	}
}
