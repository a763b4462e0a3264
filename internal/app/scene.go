package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hikesim/internal/config"
	"github.com/Faultbox/hikesim/internal/engine/camera"
	"github.com/Faultbox/hikesim/internal/engine/marker"
	"github.com/Faultbox/hikesim/internal/engine/terrain"
	"github.com/Faultbox/hikesim/internal/engine/waypath"
	"github.com/Faultbox/hikesim/internal/logger"
	"github.com/Faultbox/hikesim/internal/sim"
)

// Source loads named asset files.
type Source interface {
	Load(kind, name string) ([]byte, error)
}

// Scene is the CPU-side data of one run, built before any GPU work.
type Scene struct {
	Field  *terrain.HeightField
	Mesh   *terrain.Mesh
	Path   waypath.Waypath
	Marker marker.Mesh
}

// LoadScene reads the heightmap and path and builds the terrain mesh.
// Load failures are *assets.AssetLoadError.
func LoadScene(cfg *config.Config, src Source) (*Scene, error) {
	field, err := terrain.LoadHeightField(src, cfg.Assets.Heightmap)
	if err != nil {
		return nil, err
	}

	path, err := waypath.Load(src, cfg.Assets.Path)
	if err != nil {
		return nil, err
	}
	if len(path) < 2 {
		logger.Warn("hiking path has fewer than two points, marker stays at the origin",
			zap.String("path", cfg.Assets.Path),
			zap.Int("points", len(path)),
		)
	}

	mesh := terrain.BuildMesh(field, cfg.Terrain.ScaleY, cfg.Terrain.ScaleXZ)

	logger.Info("scene loaded",
		zap.Int("width", field.Width),
		zap.Int("height", field.Height),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("path_points", len(path)),
		zap.Float32("path_length", path.Length()),
	)

	return &Scene{
		Field:  field,
		Mesh:   mesh,
		Path:   path,
		Marker: marker.Pyramid(),
	}, nil
}

// Settings derives the simulation tunables from the config.
func Settings(cfg *config.Config) sim.Settings {
	c := cfg.Camera
	return sim.Settings{
		Camera: camera.Settings{
			Sensitivity:  c.Sensitivity,
			MoveSpeed:    c.MoveSpeed,
			FollowOffset: mgl32.Vec3(c.FollowOffset),
			FOVDegrees:   c.FOVDegrees,
			Near:         c.Near,
			Far:          c.Far,
		},
		RateFactor: cfg.Animation.RateFactor,
	}
}

// InitialState returns the simulation state before the first frame.
func InitialState(cfg *config.Config, path waypath.Waypath) (sim.State, error) {
	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return sim.State{}, fmt.Errorf("camera: %w", err)
	}

	c := cfg.Camera
	cam := camera.New(mode, mgl32.Vec3(c.StartPosition), c.StartYaw, c.StartPitch)
	anim := waypath.AnimationState{Rate: cfg.Animation.Rate}
	return sim.New(anim, cam, path), nil
}
