// Package prism is the webgpu drawing collaborator of a render loop. It
// owns the device and the surface, turns wgsl sources into render
// pipelines and draws each frame with whatever program is active.
package prism

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var logLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}

// webgpu insists on staying on one OS thread.
func init() {
	runtime.LockOSThread()

	if level, ok := logLevels[strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL"))]; ok {
		wgpu.SetLogLevel(level)
	}
}

// Context bundles the low level webgpu state: the Device with its
// Queue, the Surface and the Adapter it was requested from, plus the
// cache of linked programs.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter

	surfaceConfig *wgpu.SurfaceConfiguration
	programs      *lru.Cache[programKey, *Program]
	active        *Program
}

// New builds the webgpu state for the surface described by sd. The
// surface itself stays unconfigured until the first SetViewport call
// delivers a size.
func New(sd *wgpu.SurfaceDescriptor) (*Context, error) {
	ctx := &Context{}
	ctx.programs, _ = lru.NewWithEvict[programKey, *Program](8, releaseProgramOnEviction)

	done := false
	defer func() {
		if !done {
			ctx.Release()
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	ctx.Surface = instance.CreateSurface(sd)

	var err error

	// the adapter must be able to present to the Surface
	ctx.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    ctx.Surface,
		ForceFallbackAdapter: os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1",
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	ctx.Device, err = ctx.Adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}

	ctx.Queue = ctx.Device.GetQueue()
	ctx.surfaceConfig = ctx.defaultSurfaceConfig()

	done = true

	return ctx, nil
}

// defaultSurfaceConfig picks the sizeless part of the surface
// configuration, the width and height arrive with the first resize.
func (d *Context) defaultSurfaceConfig() *wgpu.SurfaceConfiguration {
	caps := d.Surface.GetCapabilities(d.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormatBGRA8Unorm,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],

		// a latency of one frame keeps input lag low
		DesiredMaximumFrameLatency: 1,
	}
}

func (d *Context) Release() {
	d.active = nil

	if d.programs != nil {
		d.programs.Purge()
	}

	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
