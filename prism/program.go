package prism

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/cadence/tempo"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var _ tempo.DrawContext = (*Context)(nil)

// Shader is one compiled wgsl stage. Linking needs the source again to
// key the pipeline cache, so the handle keeps it.
type Shader struct {
	stage  tempo.ShaderStage
	module *wgpu.ShaderModule
	source string
}

func (s *Shader) Release() {
	if s.module != nil {
		s.module.Release()
		s.module = nil
	}
}

// Program is a render pipeline linked from one vertex and one fragment
// shader. Programs draw a single vertex buffer of vec2f positions at
// location 0 and enter the stages at vs_main and fs_main.
type Program struct {
	pipeline *wgpu.RenderPipeline
}

func (p *Program) Release() {
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
}

type programKey struct {
	vertex   string
	fragment string
}

func releaseProgramOnEviction(_ programKey, p *Program) {
	p.Release()
}

// CompileShader parses and validates a single shader stage.
func (d *Context) CompileShader(stage tempo.ShaderStage, source string) (tempo.Shader, error) {
	module, err := d.TryCreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      fmt.Sprintf("Shader.%s", stage),
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: source},
	})

	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", stage, err)
	}

	return finalized("shader module", &Shader{stage: stage, module: module, source: source}), nil
}

// LinkProgram builds the render pipeline for a shader pair. Linking the
// same pair again returns the cached pipeline.
func (d *Context) LinkProgram(vertex, fragment tempo.Shader) (tempo.Program, error) {
	vs, ok := vertex.(*Shader)
	if !ok || vs.stage != tempo.StageVertex {
		return nil, fmt.Errorf("prism: not a vertex shader: %T", vertex)
	}

	fs, ok := fragment.(*Shader)
	if !ok || fs.stage != tempo.StageFragment {
		return nil, fmt.Errorf("prism: not a fragment shader: %T", fragment)
	}

	key := programKey{vertex: vs.source, fragment: fs.source}
	if cached, ok := d.programs.Get(key); ok {
		return cached, nil
	}

	pipeline, err := d.specialize(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("link program: %w", err)
	}

	program := finalized("render pipeline", &Program{pipeline: pipeline})
	d.programs.Add(key, program)

	return program, nil
}

// UseProgram makes program the pipeline that every following frame
// binds. A nil program unbinds.
func (d *Context) UseProgram(program tempo.Program) {
	if program == nil {
		d.active = nil
		return
	}

	p, ok := program.(*Program)
	if !ok {
		slog.Warn("Ignoring unknown program type", slog.String("type", fmt.Sprintf("%T", program)))
		return
	}

	d.active = p
}

func (d *Context) specialize(vs, fs *Shader) (*wgpu.RenderPipeline, error) {
	slog.Info("Create render pipeline", slog.Any("format", d.surfaceConfig.Format))

	return d.TryCreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Program",
		Vertex: wgpu.VertexState{
			Module:     vs.module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					StepMode:    wgpu.VertexStepModeVertex,
					ArrayStride: 2 * 4,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         0,
							ShaderLocation: 0,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs.module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    d.surfaceConfig.Format,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
}
