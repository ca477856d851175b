package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sqweek/dialog"
)

var (
	ErrUnsupportedContext = errors.New("unsupported OpenGL context")
	ErrShaderBank         = errors.New("shader bank build failed")
)

// Minimum context version: GLSL 3.30 shaders with explicit attribute locations.
const (
	minGLMajor = 3
	minGLMinor = 3
)

// ParseGLVersion reads the leading "major.minor" of a GL_VERSION string such
// as "4.1 Metal - 83.1" or "4.6.0 NVIDIA 535.54".
func ParseGLVersion(version string) (major, minor int, err error) {
	fields := strings.Fields(version)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("%w: empty version string", ErrUnsupportedContext)
	}
	parts := strings.SplitN(fields[0], ".", 3)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("%w: malformed version %q", ErrUnsupportedContext, version)
	}
	if major, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: malformed version %q", ErrUnsupportedContext, version)
	}
	if minor, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: malformed version %q", ErrUnsupportedContext, version)
	}
	return major, minor, nil
}

// CheckGLVersion fails when the context is older than 3.3.
func CheckGLVersion(version string) error {
	major, minor, err := ParseGLVersion(version)
	if err != nil {
		return err
	}
	if major < minGLMajor || (major == minGLMajor && minor < minGLMinor) {
		return fmt.Errorf("%w: have %d.%d, need %d.%d", ErrUnsupportedContext, major, minor, minGLMajor, minGLMinor)
	}
	return nil
}

// notifyFatal shows a blocking error box. The process exits after it returns.
var notifyFatal = func(title string, err error) {
	dialog.Message("%s", err.Error()).Title(title).Error()
}

// fatalStartup shows err to the user when the viewer cannot run on this
// machine at all, then hands it back for the caller to return.
func fatalStartup(title string, err error) error {
	if errors.Is(err, ErrUnsupportedContext) || errors.Is(err, ErrShaderBank) {
		notifyFatal(title, err)
	}
	return err
}
