package gui

import "github.com/inkyblackness/imgui-go/v4"

// Widgets is the immediate-mode toolkit the surface draws with. Value widgets
// return true when the user changed the value this frame.
type Widgets interface {
	BeginWindow(title string) bool
	EndWindow()
	BeginPanel(title string) bool
	EndPanel()

	SliderInt(label string, v *int32, min, max int32) bool
	SliderFloat(label string, v *float32, min, max float32) bool
	Checkbox(label string, v *bool) bool
	ColorEdit3(label string, c *[3]float32) bool
	ColorEdit4(label string, c *[4]float32) bool
	Combo(label string, current *int32, items []string) bool
	Button(label string) bool
	Text(text string)
}

// ImGuiWidgets draws with Dear ImGui. It must be used between
// imgui.NewFrame and imgui.Render.
type ImGuiWidgets struct{}

func (ImGuiWidgets) BeginWindow(title string) bool {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 60}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 320, Y: 520}, imgui.ConditionFirstUseEver)
	return imgui.Begin(title)
}

func (ImGuiWidgets) EndWindow() {
	imgui.End()
}

func (ImGuiWidgets) BeginPanel(title string) bool {
	return imgui.TreeNode(title)
}

func (ImGuiWidgets) EndPanel() {
	imgui.TreePop()
}

func (ImGuiWidgets) SliderInt(label string, v *int32, min, max int32) bool {
	return imgui.SliderInt(label, v, min, max)
}

func (ImGuiWidgets) SliderFloat(label string, v *float32, min, max float32) bool {
	return imgui.SliderFloat(label, v, min, max)
}

func (ImGuiWidgets) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

func (ImGuiWidgets) ColorEdit3(label string, c *[3]float32) bool {
	return imgui.ColorEdit3(label, c)
}

func (ImGuiWidgets) ColorEdit4(label string, c *[4]float32) bool {
	return imgui.ColorEdit4(label, c)
}

func (ImGuiWidgets) Combo(label string, current *int32, items []string) bool {
	preview := ""
	if *current >= 0 && int(*current) < len(items) {
		preview = items[*current]
	}
	changed := false
	if imgui.BeginCombo(label, preview) {
		for i, item := range items {
			if imgui.SelectableV(item, int32(i) == *current, 0, imgui.Vec2{}) {
				*current = int32(i)
				changed = true
			}
		}
		imgui.EndCombo()
	}
	return changed
}

func (ImGuiWidgets) Button(label string) bool {
	return imgui.Button(label)
}

func (ImGuiWidgets) Text(text string) {
	imgui.Text(text)
}
