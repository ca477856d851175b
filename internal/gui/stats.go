package gui

import (
	"fmt"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
)

// Stats measures frame time between Begin and End and averages it over a
// window of about half a second.
type Stats struct {
	now func() time.Time

	frameStart time.Time
	lastFrame  time.Duration

	windowStart time.Time
	frames      int
	fps         float64
	avgFrame    time.Duration
	accum       time.Duration
}

const statsWindow = 500 * time.Millisecond

func NewStats() *Stats {
	return &Stats{now: time.Now}
}

func (s *Stats) Begin() {
	s.frameStart = s.now()
	if s.windowStart.IsZero() {
		s.windowStart = s.frameStart
	}
}

func (s *Stats) End() {
	end := s.now()
	s.lastFrame = end.Sub(s.frameStart)
	s.accum += s.lastFrame
	s.frames++

	if elapsed := end.Sub(s.windowStart); elapsed >= statsWindow {
		s.fps = float64(s.frames) / elapsed.Seconds()
		s.avgFrame = s.accum / time.Duration(s.frames)
		s.frames = 0
		s.accum = 0
		s.windowStart = end
	}
}

func (s *Stats) FPS() float64 {
	return s.fps
}

// FrameTime is the averaged CPU time per frame.
func (s *Stats) FrameTime() time.Duration {
	return s.avgFrame
}

func (s *Stats) String() string {
	return fmt.Sprintf("%.0f FPS  %.2f ms", s.fps, float64(s.avgFrame.Microseconds())/1000)
}

// DrawOverlay shows the stats in a small fixed window in the top left corner.
func (s *Stats) DrawOverlay() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 0, Y: 0}, imgui.ConditionAlways, imgui.Vec2{})
	imgui.SetNextWindowBgAlpha(0.5)
	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsAlwaysAutoResize |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing | imgui.WindowFlagsNoNav
	if imgui.BeginV("stats", nil, flags) {
		imgui.Text(s.String())
	}
	imgui.End()
}
