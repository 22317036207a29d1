package armature

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// WindowConfig controls the viewport window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig seeds new cameras.
type CameraConfig struct {
	// FOV is the vertical field of view in degrees.
	FOV         float32 `yaml:"fov"`
	MinDistance float32 `yaml:"minDistance"`
}

// Config carries the viewport and renderer settings. [DefaultConfig] gives
// working values; [LoadConfig] overlays a YAML file on top of them.
type Config struct {
	Window     WindowConfig `yaml:"window"`
	ClearColor mgl32.Vec3   `yaml:"clearColor"`
	ShaderDir  string       `yaml:"shaderDir"`
	Camera     CameraConfig `yaml:"camera"`
	GridLevels []GridLevel  `yaml:"gridLevels"`
}

// DefaultConfig returns the stock editor settings.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "armature",
			Width:  1280,
			Height: 800,
			VSync:  true,
		},
		ClearColor: mgl32.Vec3{0.1, 0.1, 0.1},
		ShaderDir:  "shaders",
		Camera: CameraConfig{
			FOV:         45,
			MinDistance: 0.1,
		},
		GridLevels: DefaultGridLevels(),
	}
}

// LoadConfig reads a YAML config file over the defaults, so partial files
// only override what they mention.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// NewCameraFromConfig returns a default camera with the config's field of
// view and zoom floor applied.
func NewCameraFromConfig(cfg CameraConfig) Camera {
	c := NewCamera()
	if cfg.FOV > 0 {
		c.FOV = mgl32.DegToRad(cfg.FOV)
	}
	if cfg.MinDistance > 0 {
		c.MinDistance = cfg.MinDistance
	}
	return c
}
