package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vovakirdan/turtle-racer/internal/core"
)

// pressTracker turns held-state polling into press edges.
type pressTracker struct {
	prev map[int]bool
}

func newPressTracker() *pressTracker {
	return &pressTracker{prev: make(map[int]bool)}
}

// justPressed reports whether id went from released to pressed since the
// previous call for the same id.
func (p *pressTracker) justPressed(id int, down bool) bool {
	jp := down && !p.prev[id]
	p.prev[id] = down
	return jp
}

// toWorld maps a cursor position in window coordinates onto the race's
// world coordinates.
func toWorld(cx, cy float64, winW, winH, worldW, worldH int) core.Vec2 {
	if winW <= 0 || winH <= 0 {
		return core.Vec2{X: cx, Y: cy}
	}
	return core.Vec2{
		X: cx * float64(worldW) / float64(winW),
		Y: cy * float64(worldH) / float64(winH),
	}
}

var mouseButtons = []struct {
	glfw glfw.MouseButton
	core core.MouseButton
}{
	{glfw.MouseButtonLeft, core.MouseLeft},
	{glfw.MouseButtonMiddle, core.MouseMiddle},
	{glfw.MouseButtonRight, core.MouseRight},
}

// poll collects the events of one frame. Close and Escape both request quit.
func (d *Driver) poll() []core.Event {
	glfw.PollEvents()

	var events []core.Event
	if d.win.ShouldClose() {
		events = append(events, core.QuitEvent())
	}
	if d.keys.justPressed(int(glfw.KeyEscape), d.win.GetKey(glfw.KeyEscape) == glfw.Press) {
		events = append(events, core.QuitEvent())
	}

	winW, winH := d.win.GetSize()
	for _, b := range mouseButtons {
		if !d.mouse.justPressed(int(b.glfw), d.win.GetMouseButton(b.glfw) == glfw.Press) {
			continue
		}
		cx, cy := d.win.GetCursorPos()
		events = append(events, core.ClickEvent(b.core, toWorld(cx, cy, winW, winH, d.width, d.height)))
	}
	return events
}
