package shader

import (
	"embed"

	"github.com/Faultbox/hikesim/internal/assets"
)

//go:embed glsl/*.vert glsl/*.frag
var embedded embed.FS

// Names of the embedded sources.
const (
	DefaultVertex   = "glsl/hikesim.vert"
	DefaultFragment = "glsl/hikesim.frag"
)

// Uniform names shared by every draw.
const (
	UniformModel       = "model"
	UniformView        = "view"
	UniformProjection  = "projection"
	UniformColor       = "uColor"
	UniformHeightColor = "uHeightColor"
)

// Source loads named asset files.
type Source interface {
	Load(kind, name string) ([]byte, error)
}

// Sources is a vertex/fragment source pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// Embedded returns the built-in shader sources.
func Embedded() Sources {
	return Sources{
		Vertex:   mustRead(DefaultVertex),
		Fragment: mustRead(DefaultFragment),
	}
}

// LoadSources returns the embedded sources with any non-empty override
// file read through src. A missing override is an *assets.AssetLoadError.
func LoadSources(src Source, vertexFile, fragmentFile string) (Sources, error) {
	s := Embedded()
	if vertexFile != "" {
		data, err := src.Load(assets.KindShader, vertexFile)
		if err != nil {
			return Sources{}, err
		}
		s.Vertex = string(data)
	}
	if fragmentFile != "" {
		data, err := src.Load(assets.KindShader, fragmentFile)
		if err != nil {
			return Sources{}, err
		}
		s.Fragment = string(data)
	}
	return s, nil
}

func mustRead(name string) string {
	data, err := embedded.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(data)
}
