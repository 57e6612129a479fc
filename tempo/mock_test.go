package tempo

import (
	"fmt"
	"testing"

	"github.com/oliverbestmann/cadence/glint"
	"github.com/stretchr/testify/require"
)

// recordingContext is a DrawContext that records every call and can be
// told to fail compilation or linking.
type recordingContext struct {
	compiled  []ShaderStage
	sources   map[ShaderStage]string
	linked    int
	used      []Program
	viewports [][2]int

	failCompile map[ShaderStage]error
	failLink    error
}

func newRecordingContext() *recordingContext {
	return &recordingContext{
		sources:     map[ShaderStage]string{},
		failCompile: map[ShaderStage]error{},
	}
}

func (c *recordingContext) CompileShader(stage ShaderStage, source string) (Shader, error) {
	if err := c.failCompile[stage]; err != nil {
		return nil, err
	}

	c.compiled = append(c.compiled, stage)
	c.sources[stage] = source

	return fmt.Sprintf("shader-%s", stage), nil
}

func (c *recordingContext) LinkProgram(vertex, fragment Shader) (Program, error) {
	if c.failLink != nil {
		return nil, c.failLink
	}

	c.linked++

	return "program", nil
}

func (c *recordingContext) UseProgram(p Program) {
	c.used = append(c.used, p)
}

func (c *recordingContext) SetViewport(width, height int) {
	c.viewports = append(c.viewports, [2]int{width, height})
}

// world is the state type used throughout the loop tests.
type world struct {
	steps  int
	draws  int
	events []glint.Event
}

func newTestBuilder(t *testing.T) (*glint.Headless, *recordingContext, *Builder[world]) {
	t.Helper()

	h := glint.NewHeadless(640, 480)
	dc := newRecordingContext()

	b, err := NewBuilder[world](h, dc)
	require.NoError(t, err)

	return h, dc, b
}
