// Package renderer draws the terrain, the hiking path and the marker.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hikesim/internal/engine/marker"
	"github.com/Faultbox/hikesim/internal/engine/shader"
	"github.com/Faultbox/hikesim/internal/engine/terrain"
	"github.com/Faultbox/hikesim/internal/engine/waypath"
	"github.com/Faultbox/hikesim/internal/logger"
)

// Default colours. The marker colour comes from config.
var (
	SkyColor  = mgl32.Vec3{0.529, 0.808, 0.922}
	PathColor = mgl32.Vec3{1.0, 0.85, 0.2}
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	Sources     shader.Sources
	SkyColor    mgl32.Vec3
	PathColor   mgl32.Vec3
	MarkerColor mgl32.Vec3
}

// Frame holds the matrices for one frame.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Marker     mgl32.Mat4 // Model matrix of the marker
}

type uniforms struct {
	model       int32
	view        int32
	projection  int32
	color       int32
	heightColor int32
}

// Renderer handles all OpenGL rendering.
// IMPORTANT: every method must run on the thread that owns the GL context.
type Renderer struct {
	config   Config
	program  uint32
	uniforms uniforms

	terrain gpuMesh
	path    gpuMesh
	marker  gpuMesh
}

// New compiles the shared shader program and sets the default GL state.
// The GL context must already be current with functions loaded.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	program, err := shader.CompileProgram(cfg.Sources.Vertex, cfg.Sources.Fragment)
	if err != nil {
		return nil, fmt.Errorf("build shader program: %w", err)
	}
	r.program = program
	r.uniforms = uniforms{
		model:       shader.MustGetUniform(program, shader.UniformModel),
		view:        shader.MustGetUniform(program, shader.UniformView),
		projection:  shader.MustGetUniform(program, shader.UniformProjection),
		color:       shader.GetUniform(program, shader.UniformColor),
		heightColor: shader.GetUniform(program, shader.UniformHeightColor),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	sky := cfg.SkyColor
	gl.ClearColor(sky[0], sky[1], sky[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	logger.Debug("shader program created", zap.Uint32("program", program))
	return r, nil
}

// Upload sends the scene geometry to the GPU. It replaces any geometry
// uploaded before.
func (r *Renderer) Upload(mesh *terrain.Mesh, path waypath.Waypath, m marker.Mesh) error {
	r.deleteMeshes()

	r.terrain = newGPUMesh(mesh.VertexData(), mesh.Indices, terrain.VertexStride, true)
	r.path = newGPUMesh(path.VertexData(), nil, 3, false)
	r.path.count = int32(len(path))
	r.marker = newGPUMesh(m.Vertices, m.Indices, 3, false)

	if err := checkError("upload"); err != nil {
		return err
	}

	logger.Info("scene uploaded",
		zap.Int("terrain_vertices", len(mesh.Vertices)),
		zap.Int("terrain_triangles", mesh.TriangleCount()),
		zap.Int("path_points", len(path)),
	)
	return nil
}

// Draw renders one frame: terrain, path, then marker.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	setMat4(r.uniforms.view, f.View)
	setMat4(r.uniforms.projection, f.Projection)

	identity := mgl32.Ident4()

	if r.terrain.count > 0 {
		setMat4(r.uniforms.model, identity)
		gl.Uniform1i(r.uniforms.heightColor, 1)
		gl.BindVertexArray(r.terrain.vao)
		gl.DrawElements(gl.TRIANGLES, r.terrain.count, gl.UNSIGNED_INT, nil)
	}

	gl.Uniform1i(r.uniforms.heightColor, 0)

	if r.path.count > 1 {
		setMat4(r.uniforms.model, identity)
		setVec3(r.uniforms.color, r.config.PathColor)
		gl.BindVertexArray(r.path.vao)
		gl.DrawArrays(gl.LINE_STRIP, 0, r.path.count)
	}

	if r.marker.count > 0 {
		setMat4(r.uniforms.model, f.Marker)
		setVec3(r.uniforms.color, r.config.MarkerColor)
		gl.BindVertexArray(r.marker.vao)
		gl.DrawElements(gl.TRIANGLES, r.marker.count, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// ReadPixels returns the back buffer as RGBA rows, bottom row first.
// Call it after Draw and before the buffer swap.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.deleteMeshes()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

func (r *Renderer) deleteMeshes() {
	r.terrain.delete()
	r.path.delete()
	r.marker.delete()
}

func setMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func setVec3(loc int32, v mgl32.Vec3) {
	gl.Uniform3f(loc, v[0], v[1], v[2])
}

// checkError drains the GL error queue and reports the first error.
func checkError(op string) error {
	var first uint32
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == 0 {
			first = code
		}
	}
	if first != 0 {
		return &GLError{Op: op, Code: first}
	}
	return nil
}
