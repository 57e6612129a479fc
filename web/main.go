//go:build js

// A triangle orbits a point that follows mouse clicks. Serve with
//
//	go tool wasmserve ./web
package main

import (
	_ "embed"
	"log/slog"
	"math"
	"os"

	"github.com/oliverbestmann/cadence/glint"
	"github.com/oliverbestmann/cadence/prism"
	"github.com/oliverbestmann/cadence/tempo"
	"github.com/oliverbestmann/webgpu/wgpu"
	"golang.org/x/mobile/exp/f32"
)

//go:embed vert.wgsl
var vertexShader string

//go:embed frag.wgsl
var fragmentShader string

type state struct {
	// client size of the canvas, for mapping click positions
	width, height int

	// orbit center in clip space
	cx, cy float32

	prevAngle float32
	angle     float32
	dir       float32
}

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	canvas, err := glint.NewCanvas(800, 600, "Cadence")
	prism.Handle(err, "create canvas")
	defer canvas.Close()

	ctx, err := prism.New(canvas.SurfaceDescriptor())
	prism.Handle(err, "initialize wgpu")
	defer ctx.Release()

	vertices := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Orbiter",
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		Size:  3 * 2 * 4,
	})

	builder, err := tempo.NewBuilder[state](canvas, ctx)
	prism.Handle(err, "create builder")

	err = builder.WithShaders(vertexShader, fragmentShader)
	prism.Handle(err, "compile shaders")

	err = builder.WithOnResize(func(st *state, width, height int) (int, int) {
		st.width, st.height = width, height
		return width, height
	})
	prism.Handle(err, "configure resize")

	err = builder.WithOnUpdate(onUpdate)
	prism.Handle(err, "configure update")

	err = builder.WithOnRender(func(info *tempo.RenderInfo[state]) {
		onRender(ctx, vertices, info)
	})
	prism.Handle(err, "configure render")

	err = builder.WithOnEvent(glint.EventClick, tempo.On(onClick))
	prism.Handle(err, "subscribe click")

	err = builder.WithOnEvent(glint.EventKeyDown, tempo.On(onKeyDown))
	prism.Handle(err, "subscribe keydown")

	renderer, err := builder.Build()
	prism.Handle(err, "build renderer")
	defer renderer.Close()

	err = renderer.Start(state{dir: 1}, 60, 0.1)
	prism.Handle(err, "start renderer")

	err = canvas.Run()
	prism.Handle(err, "run canvas")
}

func onUpdate(info *tempo.UpdateInfo[state]) {
	st := info.State

	st.prevAngle = st.angle
	st.angle += st.dir * 1.5 * float32(info.FixedTimeStep())
}

func onRender(ctx *prism.Context, vertices *wgpu.Buffer, info *tempo.RenderInfo[state]) {
	st := info.State

	info.ReAccumulate()
	angle := lerp(st.prevAngle, st.angle, float32(info.BlendingFactor()))

	// keep circles circular on a non square canvas
	aspect := float32(1)
	if st.width > 0 {
		aspect = float32(st.height) / float32(st.width)
	}

	ox := st.cx + 0.5*f32.Cos(angle)*aspect
	oy := st.cy + 0.5*f32.Sin(angle)

	buf := make([]float32, 0, 6)
	for k := range 3 {
		tip := angle*2 + float32(k)*2*math.Pi/3
		buf = append(buf, ox+0.08*f32.Cos(tip)*aspect, oy+0.08*f32.Sin(tip))
	}

	ctx.WriteBuffer(vertices, 0, wgpu.ToBytes(buf))

	err := ctx.Frame(wgpu.Color{R: 0.02, G: 0.02, B: 0.05, A: 1}, func(pass *wgpu.RenderPassEncoder) {
		pass.SetVertexBuffer(0, vertices, 0, wgpu.WholeSize)
		pass.Draw(3, 1, 0, 0)
	})

	if err != nil {
		slog.Warn("Skipping frame", slog.String("error", err.Error()))
	}
}

func onClick(st *state, ev glint.MouseEvent) {
	if st.width == 0 || st.height == 0 {
		return
	}

	st.cx = float32(ev.X)/float32(st.width)*2 - 1
	st.cy = 1 - float32(ev.Y)/float32(st.height)*2
}

func onKeyDown(st *state, ev glint.KeyEvent) {
	if ev.Key == glint.KeySpace {
		st.dir = -st.dir
	}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
