// Package window presents a race in a native OpenGL window. Frames are
// drawn with the gg rasterizer and uploaded as a single texture.
package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vovakirdan/turtle-racer/internal/canvas"
	"github.com/vovakirdan/turtle-racer/internal/core"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

// Driver implements the loop driver contract on top of GLFW.
type Driver struct {
	win    *glfw.Window
	raster *canvas.Raster
	width  int
	height int

	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32

	keys  *pressTracker
	mouse *pressTracker
}

// NewDriver creates an unopened window driver.
func NewDriver() *Driver {
	return &Driver{keys: newPressTracker(), mouse: newPressTracker()}
}

// Open creates the window and the GL resources for presenting frames.
func (d *Driver) Open(width, height int, title string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	// Frame pacing belongs to the loop.
	glfw.SwapInterval(0)
	d.win = win

	if err := gl.Init(); err != nil {
		d.destroyWindow()
		return fmt.Errorf("gl init: %w", err)
	}
	if err := d.initGL(width, height); err != nil {
		d.destroyWindow()
		return err
	}

	d.width, d.height = width, height
	d.raster = canvas.NewRaster(width, height)
	return nil
}

func (d *Driver) initGL(width, height int) error {
	program, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return err
	}
	d.program = program

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.GenVertexArrays(1, &d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))
	gl.BindVertexArray(0)

	gl.GenTextures(1, &d.tex)
	gl.BindTexture(gl.TEXTURE_2D, d.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.UseProgram(d.program)
	gl.Uniform1i(gl.GetUniformLocation(d.program, gl.Str("uFrame\x00")), 0)
	return nil
}

// Events polls GLFW and returns the events of this frame.
func (d *Driver) Events() []core.Event {
	return d.poll()
}

// Surface returns the raster the next frame is drawn on.
func (d *Driver) Surface() core.Surface {
	return d.raster
}

// Present uploads the raster and swaps buffers.
func (d *Driver) Present() error {
	if err := d.raster.Err(); err != nil {
		return err
	}
	img := d.raster.RGBA()

	fbW, fbH := d.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(d.width), int32(d.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.UseProgram(d.program)
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quadVerts)/2))
	gl.BindVertexArray(0)

	d.win.SwapBuffers()
	return nil
}

// Close releases GL objects, the raster and the window.
func (d *Driver) Close() error {
	if d.win == nil {
		return nil
	}
	gl.DeleteTextures(1, &d.tex)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.program)

	var err error
	if d.raster != nil {
		err = d.raster.Close()
		d.raster = nil
	}
	d.destroyWindow()
	return err
}

func (d *Driver) destroyWindow() {
	if d.win != nil {
		d.win.Destroy()
		d.win = nil
	}
	glfw.Terminate()
}
