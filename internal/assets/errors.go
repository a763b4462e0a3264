package assets

import "fmt"

// AssetLoadError reports a startup asset that could not be read or decoded.
// It is fatal: the viewer has no degraded mode without its assets.
type AssetLoadError struct {
	Asset string // KindHeightmap, KindWaypath or KindShader
	Path  string
	Err   error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load %s %q: %v", e.Asset, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
