package shaders

import (
	"ProcPlanet/internal/logger"
	"ProcPlanet/internal/params"
	"ProcPlanet/internal/renderer"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CloudProgram is built alongside the selectable kinds but only ever drawn
// over the planet.
const CloudProgram = "cloud"

var ErrUnknownProgram = errors.New("unknown shader program")

// Compiler turns one vertex/fragment source pair into a usable program.
type Compiler func(name, vertexSource, fragmentSource string) (renderer.Program, error)

type deleter interface {
	Delete()
}

// Bank holds every program the viewer draws with. It is filled once by Build
// and never changes afterwards.
type Bank struct {
	programs map[string]renderer.Program
}

// programName maps a selector value to the program that renders it.
func programName(kind params.ShaderKind) (string, error) {
	switch kind {
	case params.ShaderLambert:
		return "lambert", nil
	case params.ShaderFunny:
		return "funny", nil
	case params.ShaderPerlin3D:
		return "perlin3D", nil
	case params.ShaderPerlin3DBlinnPhong:
		return "perlin3D_BlinnPhong", nil
	case params.ShaderPlanet:
		return "planet", nil
	}
	return "", fmt.Errorf("%w: %s", params.ErrUnknownShader, kind)
}

// ProgramNames lists the programs Build creates, selectable kinds first.
func ProgramNames() []string {
	kinds := params.ShaderKinds()
	names := make([]string, 0, len(kinds)+1)
	for _, kind := range kinds {
		name, err := programName(kind)
		if err != nil {
			panic(err)
		}
		names = append(names, name)
	}
	return append(names, CloudProgram)
}

// Build compiles every program. On the first failure the programs already
// built are deleted and the error is returned.
func Build(compile Compiler) (*Bank, error) {
	start := time.Now()
	bank := &Bank{programs: make(map[string]renderer.Program)}

	var cleanup renderer.Unwind
	defer cleanup.Unwind()

	for _, name := range ProgramNames() {
		vs, err := Source(name, Vertex)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		fs, err := Source(name, Fragment)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		program, err := compile(name, vs, fs)
		if err != nil {
			logger.Log.Error("Shader build failed", zap.String("program", name), zap.Error(err))
			return nil, err
		}
		if d, ok := program.(deleter); ok {
			cleanup.Add(d.Delete)
		}
		bank.programs[name] = program
	}
	cleanup.Discard()

	logger.Log.Info("Shader bank ready",
		zap.Int("programs", len(bank.programs)),
		zap.Duration("took", time.Since(start)))
	return bank, nil
}

// CompileGL is the Compiler for a live OpenGL context.
func CompileGL(name, vertexSource, fragmentSource string) (renderer.Program, error) {
	program := renderer.NewShaderProgram(name, vertexSource, fragmentSource)
	if err := program.Compile(); err != nil {
		return nil, err
	}
	return program, nil
}

// Resolve returns the program for a selector value.
func (b *Bank) Resolve(kind params.ShaderKind) (renderer.Program, error) {
	name, err := programName(kind)
	if err != nil {
		return nil, err
	}
	return b.Program(name)
}

func (b *Bank) Cloud() (renderer.Program, error) {
	return b.Program(CloudProgram)
}

func (b *Bank) Program(name string) (renderer.Program, error) {
	p, ok := b.programs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	return p, nil
}

// Delete frees every program. The bank is unusable afterwards.
func (b *Bank) Delete() {
	for name, p := range b.programs {
		if d, ok := p.(deleter); ok {
			d.Delete()
		}
		delete(b.programs, name)
	}
}
