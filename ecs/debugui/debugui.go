// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Windows render from a scheduler system so they run inside the host's frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/woodland/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts should not forward captured input to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes the input capture state and defers every item's
// render function to the end of the frame. Hidden systems defer nothing.
type ImguiSystem[W any] struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Hidden     bool
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem[W]) Execute(frame *ecs.UpdateFrame[W]) {
	if i.Hidden {
		i.InputState = ImguiInputState{}
		return
	}

	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// Toggle shows or hides every item.
func (i *ImguiSystem[W]) Toggle() {
	i.Hidden = !i.Hidden
}
