package prism

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// ErrNotConfigured is returned by Frame before the surface received its
// first size.
var ErrNotConfigured = errors.New("prism: surface not configured")

// SetViewport configures the surface for a new backing store size. A
// zero size is ignored, a minimized window must not tear down the
// swapchain.
func (d *Context) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	if d.surfaceConfig.Width == uint32(width) && d.surfaceConfig.Height == uint32(height) {
		return
	}

	slog.Debug("Configure surface",
		slog.Int("width", width),
		slog.Int("height", height),
	)

	d.surfaceConfig.Width = uint32(width)
	d.surfaceConfig.Height = uint32(height)
	d.Surface.Configure(d.Device, d.surfaceConfig)
}

// Frame acquires the next surface texture, opens a render pass cleared
// to clear, binds the active program and hands the pass to fn. The
// texture is presented once fn returns.
func (d *Context) Frame(clear wgpu.Color, fn func(pass *wgpu.RenderPassEncoder)) error {
	if d.surfaceConfig.Width == 0 || d.surfaceConfig.Height == 0 {
		return ErrNotConfigured
	}

	screen, err := d.Surface.TryGetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	defer func() {
		if screen != nil {
			screen.Release()
		}
	}()

	view := screen.CreateView(nil)
	defer view.Release()

	enc := d.CreateCommandEncoder(nil)
	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Frame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
	})

	if d.active != nil && d.active.pipeline != nil {
		pass.SetPipeline(d.active.pipeline)
	}

	if fn != nil {
		fn(pass)
	}

	pass.End()

	buf := enc.Finish(nil)
	defer buf.Release()

	d.Submit(buf)
	d.Surface.Present()

	// present consumed the texture, no release needed anymore
	screen = nil

	return nil
}
