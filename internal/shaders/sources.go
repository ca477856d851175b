package shaders

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed glsl/*.glsl
var glslFiles embed.FS

const includeDirective = "#include"

// Stage selects the vertex or fragment half of a program.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) suffix() string {
	if s == Vertex {
		return "-vert.glsl"
	}
	return "-frag.glsl"
}

// Source returns the expanded GLSL for one stage of the named program.
func Source(name string, stage Stage) (string, error) {
	sub, err := fs.Sub(glslFiles, "glsl")
	if err != nil {
		return "", err
	}
	return expand(sub, name+stage.suffix(), nil)
}

// expand inlines `#include "file"` lines relative to root. Nested includes
// are allowed, cycles are an error.
func expand(root fs.FS, file string, stack []string) (string, error) {
	for _, open := range stack {
		if open == file {
			return "", fmt.Errorf("include cycle: %s -> %s", strings.Join(stack, " -> "), file)
		}
	}
	data, err := fs.ReadFile(root, file)
	if err != nil {
		return "", err
	}
	stack = append(stack, file)

	var out strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if !strings.HasPrefix(trimmed, includeDirective) {
			out.WriteString(text)
			out.WriteByte('\n')
			continue
		}
		target := strings.Trim(strings.TrimSpace(strings.TrimPrefix(trimmed, includeDirective)), `"<>`)
		if target == "" {
			return "", fmt.Errorf("%s:%d: empty include", file, line)
		}
		body, err := expand(root, path.Join(path.Dir(file), target), stack)
		if err != nil {
			return "", fmt.Errorf("%s:%d: %w", file, line, err)
		}
		out.WriteString(body)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return out.String(), nil
}
