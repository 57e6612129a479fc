package tempo

import "fmt"

// Shader is an opaque handle to a compiled shader stage. Its concrete
// type belongs to the DrawContext that produced it.
type Shader any

// Program is an opaque handle to a linked shader program.
type Program any

type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}

	return fmt.Sprintf("ShaderStage(%d)", int(s))
}

// DrawContext is the drawing collaborator of a renderer. The loop only
// compiles, links and binds through it and forwards viewport changes,
// everything else is between the render callback and the context.
type DrawContext interface {
	CompileShader(stage ShaderStage, source string) (Shader, error)
	LinkProgram(vertex, fragment Shader) (Program, error)
	UseProgram(program Program)
	SetViewport(width, height int)
}
