package shader

import "fmt"

// Shader stages reported by ShaderCompileError.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
)

// ShaderCompileError carries the driver's info log for a failed stage.
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// ShaderLinkError carries the driver's info log for a failed link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return "link shader program: " + e.Log
}

// UniformNotFoundError is the panic value of MustGetUniform.
type UniformNotFoundError struct {
	Program uint32
	Name    string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("uniform %q not found in program %d", e.Name, e.Program)
}
