package params

import (
	"errors"
	"fmt"
)

var ErrUnknownShader = errors.New("unknown shader")

// ShaderKind is the closed set of programs the selector may name. The cloud
// program is not a member: it only ever runs as an overlay of the planet pass.
type ShaderKind int

const (
	ShaderLambert ShaderKind = iota
	ShaderFunny
	ShaderPerlin3D
	ShaderPerlin3DBlinnPhong
	ShaderPlanet

	shaderKindCount
)

var shaderNames = [shaderKindCount]string{
	ShaderLambert:            "lambert",
	ShaderFunny:              "funny",
	ShaderPerlin3D:           "perlin3D",
	ShaderPerlin3DBlinnPhong: "perlin3D_BlinnPhong",
	ShaderPlanet:             "planet",
}

// ShaderKinds lists every selectable kind in dropdown order.
func ShaderKinds() []ShaderKind {
	kinds := make([]ShaderKind, 0, shaderKindCount)
	for k := ShaderKind(0); k < shaderKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k ShaderKind) Valid() bool {
	return k >= 0 && k < shaderKindCount
}

func (k ShaderKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ShaderKind(%d)", int(k))
	}
	return shaderNames[k]
}

func ParseShaderKind(name string) (ShaderKind, error) {
	for k, n := range shaderNames {
		if n == name {
			return ShaderKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShader, name)
}
