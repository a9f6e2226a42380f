package sieview

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CameraConfig overrides camera defaults. Nil fields keep the default.
type CameraConfig struct {
	Position *[3]float64 `yaml:"position"`
	Target   *[3]float64 `yaml:"target"`
	Up       *[3]float64 `yaml:"up"`
	Near     *float64    `yaml:"near"`
	Far      *float64    `yaml:"far"`
	Fov      *float64    `yaml:"fov"`
}

type ViewerConfig struct {
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Background string       `yaml:"background"`
	MeshColor  string       `yaml:"mesh_color"`
	ShowGrid   bool         `yaml:"show_grid"`
	ShowAxes   bool         `yaml:"show_axes"`
	Viewport   Viewport     `yaml:"viewport"`
	Camera     CameraConfig `yaml:"camera"`
}

func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		Width:      1100,
		Height:     580,
		Background: "#eeeeee",
		MeshColor:  "#cccccc",
		ShowGrid:   true,
		ShowAxes:   true,
		Viewport:   Perspective,
	}
}

// LoadViewerConfig reads YAML on top of the defaults.
func LoadViewerConfig(r io.Reader) (ViewerConfig, error) {
	cfg := DefaultViewerConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return ViewerConfig{}, errors.Wrap(err, "decode viewer config")
	}
	if err := cfg.Validate(); err != nil {
		return ViewerConfig{}, err
	}
	return cfg, nil
}

func LoadViewerConfigFile(path string) (ViewerConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return ViewerConfig{}, errors.Wrapf(err, "open viewer config %s", path)
	}
	defer f.Close()

	cfg, err := LoadViewerConfig(f)
	if err != nil {
		return ViewerConfig{}, errors.Wrapf(err, "viewer config %s", path)
	}
	return cfg, nil
}

func (c ViewerConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "size %dx%d", c.Width, c.Height)
	}
	if !c.Viewport.Valid() {
		return errors.Wrapf(ErrUnknownViewport, "%q", c.Viewport)
	}
	if _, err := ColorFromHex(c.Background); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "background: %v", err)
	}
	if _, err := ColorFromHex(c.MeshColor); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "mesh_color: %v", err)
	}
	if c.Camera.Near != nil && c.Camera.Far != nil && *c.Camera.Near >= *c.Camera.Far {
		return errors.Wrapf(ErrInvalidConfig, "camera near %g >= far %g", *c.Camera.Near, *c.Camera.Far)
	}
	return nil
}

func (c ViewerConfig) BackgroundColor() Color {
	col, err := ColorFromHex(c.Background)
	if err != nil {
		return MustColorFromHex("#eeeeee")
	}
	return col
}

func (c ViewerConfig) DefaultMeshColor() Color {
	col, err := ColorFromHex(c.MeshColor)
	if err != nil {
		return MeshGrey
	}
	return col
}

// NewCamera builds the configured camera.
func (c ViewerConfig) NewCamera() (*Camera, error) {
	cam, err := NewCamera(c.Viewport)
	if err != nil {
		return nil, err
	}
	cc := c.Camera
	if cc.Position != nil {
		cam.Position = mgl64.Vec3(*cc.Position)
	}
	if cc.Target != nil {
		cam.Target = mgl64.Vec3(*cc.Target)
	}
	if cc.Up != nil {
		cam.Up = mgl64.Vec3(*cc.Up)
	}
	if cc.Near != nil {
		cam.Near = *cc.Near
	}
	if cc.Far != nil {
		cam.Far = *cc.Far
	}
	if cc.Fov != nil {
		cam.Fov = *cc.Fov
	}
	return cam, nil
}

// NewScene builds an empty scene with the configured helpers.
func (c ViewerConfig) NewScene() *Scene {
	s := NewScene()
	s.ShowGrid = c.ShowGrid
	s.ShowAxes = c.ShowAxes
	return s
}
