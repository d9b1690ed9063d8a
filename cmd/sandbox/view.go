package main

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vrbox/internal/engine/debug"
	"github.com/Faultbox/vrbox/internal/game"
	"github.com/Faultbox/vrbox/internal/game/world"
	"github.com/Faultbox/vrbox/internal/logger"
)

var (
	colorBackground = sdl.Color{R: 20, G: 24, B: 30, A: 255}
	colorGround     = sdl.Color{R: 46, G: 70, B: 46, A: 255}
	colorHidden     = sdl.Color{R: 70, G: 70, B: 80, A: 255}
	colorCharacter  = sdl.Color{R: 240, G: 240, B: 240, A: 255}
	colorSeated     = sdl.Color{R: 250, G: 200, B: 60, A: 255}
)

var poiColors = map[world.POIType]sdl.Color{
	world.POIBench: {R: 150, G: 100, B: 60, A: 255},
	world.POISofa:  {R: 90, G: 120, B: 200, A: 255},
	world.POIBed:   {R: 200, G: 80, B: 120, A: 255},
	world.POIChair: {R: 120, G: 180, B: 120, A: 255},
}

// view draws a top-down map centered on the character.
type view struct {
	r     *sdl.Renderer
	world *world.World
	scale float64

	shots     *debug.ScreenshotCapture
	episodeID func() string
	capture   bool
}

func newView(r *sdl.Renderer, w *world.World, scale float64, shots *debug.ScreenshotCapture, episodeID func() string) *view {
	if scale <= 0 {
		scale = 2
	}
	return &view{r: r, world: w, scale: scale, shots: shots, episodeID: episodeID}
}

// RequestCapture saves the next drawn frame as a PNG.
func (v *view) RequestCapture() {
	v.capture = true
}

// Draw renders one frame and presents it.
func (v *view) Draw(f game.Frame) error {
	width, height, err := v.r.GetOutputSize()
	if err != nil {
		return err
	}
	cx, cy := float64(width)/2, float64(height)/2
	toScreen := func(x, z float64) (int32, int32) {
		return int32(cx + (x-f.Position.X)*v.scale), int32(cy + (z-f.Position.Z)*v.scale)
	}

	v.fill(colorBackground)
	v.r.Clear()

	b := v.world.Bounds
	if b.Valid() {
		x0, y0 := toScreen(b.MinX, b.MinZ)
		x1, y1 := toScreen(b.MaxX, b.MaxZ)
		v.fill(colorGround)
		v.r.FillRect(&sdl.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0})
	}

	for _, p := range v.world.POIs {
		c := poiColors[p.Type]
		if p.Gated() && !v.world.Zones.Revealed(p.Zone) {
			c = colorHidden
		}
		x, y := toScreen(p.Position.X, p.Position.Y)
		half := int32(p.Radius * v.scale)
		v.fill(c)
		v.r.FillRect(&sdl.Rect{X: x - half, Y: y - half, W: 2 * half, H: 2 * half})
	}

	c := colorCharacter
	if f.Pose.Seated {
		c = colorSeated
	}
	size := int32(v.scale)
	if size < 3 {
		size = 3
	}
	v.fill(c)
	v.r.FillRect(&sdl.Rect{X: int32(cx) - size, Y: int32(cy) - size, W: 2 * size, H: 2 * size})

	if v.capture {
		v.capture = false
		v.saveCapture(int(width), int(height), f.Tick)
	}

	v.r.Present()
	return nil
}

func (v *view) saveCapture(width, height int, tick uint64) {
	pixels := make([]byte, width*height*4)
	if err := v.r.ReadPixels(nil, sdl.PIXELFORMAT_ABGR8888, unsafe.Pointer(&pixels[0]), width*4); err != nil {
		logger.Warn("failed to read pixels", zap.Error(err))
		return
	}
	path, err := v.shots.CaptureFromPixels(pixels, width, height, v.episodeID(), tick)
	if err != nil {
		logger.Warn("failed to save screenshot", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *view) fill(c sdl.Color) {
	v.r.SetDrawColor(c.R, c.G, c.B, c.A)
}
