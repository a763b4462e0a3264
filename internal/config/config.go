// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hikesim/internal/engine/camera"
)

// Camera modes accepted in CameraConfig.Mode.
const (
	CameraFollow   = "follow"
	CameraFreeLook = "free"
)

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Assets     AssetsConfig     `yaml:"assets"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Animation  AnimationConfig  `yaml:"animation"`
	Camera     CameraConfig     `yaml:"camera"`
	Marker     MarkerConfig     `yaml:"marker"`
	Input      InputConfig      `yaml:"input"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AssetsConfig holds asset file locations.
type AssetsConfig struct {
	DataDirs  []string      `yaml:"data_dirs"` // Searched in reverse order
	Heightmap string        `yaml:"heightmap"`
	Path      string        `yaml:"path"`
	Shaders   ShadersConfig `yaml:"shaders"`
}

// ShadersConfig holds optional shader source overrides.
// Empty paths select the embedded sources.
type ShadersConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// TerrainConfig holds heightmap-to-mesh scale factors.
type TerrainConfig struct {
	ScaleY  float32 `yaml:"scale_y"`  // Height multiplier
	ScaleXZ float32 `yaml:"scale_xz"` // Grid spacing
}

// AnimationConfig holds marker animation settings.
type AnimationConfig struct {
	Rate       float32 `yaml:"rate"`        // Progress added per frame
	RateFactor float32 `yaml:"rate_factor"` // Applied by the rate keys
}

// CameraConfig holds camera settings.
type CameraConfig struct {
	Mode          string     `yaml:"mode"`
	Sensitivity   float32    `yaml:"sensitivity"`
	MoveSpeed     float32    `yaml:"move_speed"`
	FollowOffset  [3]float32 `yaml:"follow_offset"`
	FOVDegrees    float32    `yaml:"fov_degrees"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	StartPosition [3]float32 `yaml:"start_position"`
	StartYaw      float32    `yaml:"start_yaw"`
	StartPitch    float32    `yaml:"start_pitch"`
}

// MarkerConfig holds hiker marker settings.
type MarkerConfig struct {
	Scale float32    `yaml:"scale"`
	Color [3]float32 `yaml:"color"`
}

// InputConfig maps action names to SDL scancode names.
type InputConfig struct {
	Bindings map[string]string `yaml:"bindings"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultBindings returns the default action to scancode name table.
func DefaultBindings() map[string]string {
	return map[string]string{
		"exit":          "Escape",
		"forward":       "W",
		"back":          "S",
		"strafe_left":   "A",
		"strafe_right":  "D",
		"up":            "Space",
		"down":          "Left Ctrl",
		"rate_increase": "Up",
		"rate_decrease": "Down",
		"reset":         "R",
		"toggle_camera": "C",
		"screenshot":    "F12",
	}
}

// Default returns a Config with the stock hiking scene settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Hiking Simulator",
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
		},
		Assets: AssetsConfig{
			DataDirs:  []string{"data"},
			Heightmap: "heightmap.png",
			Path:      "hiker_path.txt",
		},
		Terrain: TerrainConfig{
			ScaleY:  100.0,
			ScaleXZ: 0.5,
		},
		Animation: AnimationConfig{
			Rate:       0.0001,
			RateFactor: 0.01,
		},
		Camera: CameraConfig{
			Mode:          CameraFollow,
			Sensitivity:   0.1,
			MoveSpeed:     0,
			FollowOffset:  [3]float32{50, 50, 50},
			FOVDegrees:    45,
			Near:          0.1,
			Far:           2000,
			StartPosition: [3]float32{0, 150, 150},
			StartYaw:      -45,
			StartPitch:    -35,
		},
		Marker: MarkerConfig{
			Scale: 2.0,
			Color: [3]float32{0.9, 0.1, 0.1},
		},
		Input: InputConfig{
			Bindings: DefaultBindings(),
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "hikesim",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot produce a working viewer.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Terrain.ScaleY <= 0 || c.Terrain.ScaleXZ <= 0 {
		errs = append(errs, fmt.Errorf("terrain scales (%g, %g) must be positive", c.Terrain.ScaleY, c.Terrain.ScaleXZ))
	}
	if _, err := camera.ParseMode(c.Camera.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.Camera.FollowOffset == ([3]float32{}) {
		errs = append(errs, errors.New("camera.follow_offset must not be zero"))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range [%g, %g] is invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Assets.Heightmap == "" {
		errs = append(errs, errors.New("assets.heightmap is required"))
	}
	if c.Assets.Path == "" {
		errs = append(errs, errors.New("assets.path is required"))
	}
	return errors.Join(errs...)
}
