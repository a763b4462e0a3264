package renderer

import "fmt"

var glErrorNames = map[uint32]string{
	0x0500: "GL_INVALID_ENUM",
	0x0501: "GL_INVALID_VALUE",
	0x0502: "GL_INVALID_OPERATION",
	0x0505: "GL_OUT_OF_MEMORY",
	0x0506: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

// GLError is an error reported by glGetError after an operation.
type GLError struct {
	Op   string
	Code uint32
}

func (e *GLError) Error() string {
	name, ok := glErrorNames[e.Code]
	if !ok {
		name = fmt.Sprintf("0x%04X", e.Code)
	}
	return fmt.Sprintf("gl %s: %s", e.Op, name)
}
