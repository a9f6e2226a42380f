// Package preview shows a scene in an interactive window.
package preview

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/sieview"
	"github.com/smasonuk/sieview/project"
)

// radians of orbit per dragged pixel
const dragSpeed = 1 / 200.0

// Viewer is an ebiten.Game drawing a fixed scene. The scene is flattened
// once; only the camera changes between frames.
type Viewer struct {
	Title string

	cfg         sieview.ViewerConfig
	scene       *sieview.Scene
	camera      *sieview.Camera
	renderables []sieview.Renderable

	lastX, lastY int
	dragging     bool
	showStatus   bool
}

func NewViewer(scene *sieview.Scene, cam *sieview.Camera, cfg sieview.ViewerConfig) (*Viewer, error) {
	log.Println("Flattening scene...")
	renderables, err := scene.Draw()
	if err != nil {
		return nil, err
	}
	log.Printf("Scene ready: %d renderables", len(renderables))
	return &Viewer{
		Title:       "sieview",
		cfg:         cfg,
		scene:       scene,
		camera:      cam,
		renderables: renderables,
		showStatus:  true,
	}, nil
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if err := v.camera.ZoomExtents(v.scene.Extents(), v.cfg.Width, v.cfg.Height); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		v.camera.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		v.camera.ZoomOut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.showStatus = !v.showStatus
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		v.camera.ZoomIn()
	} else if dy < 0 {
		v.camera.ZoomOut()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.dragging = true
		v.lastX, v.lastY = ebiten.CursorPosition()
	}
	if v.dragging {
		x, y := ebiten.CursorPosition()
		dx := float64(x-v.lastX) * dragSpeed
		dy := float64(y-v.lastY) * dragSpeed
		if dx != 0 || dy != 0 {
			v.camera.Orbit(-dx, -dy)
		}
		v.lastX, v.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.dragging = false
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.cfg.BackgroundColor().RGBA())

	p := project.New(v.camera, v.cfg.Width, v.cfg.Height)
	frame := p.Frame(v.renderables)
	drawFrame(screen, frame, 1, 3)

	if v.showStatus {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  zoom: %0.2f  [E]xtents [+/-] zoom [H]ide",
			ebiten.ActualFPS(), v.camera.Zoom))
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}

// Run opens a window and blocks until it is closed.
func Run(scene *sieview.Scene, cam *sieview.Camera, cfg sieview.ViewerConfig) error {
	v, err := NewViewer(scene, cam, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(v.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	log.Println("Starting viewer...")
	return ebiten.RunGame(v)
}
