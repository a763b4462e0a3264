// Package waypath loads hiking paths and maps animation progress onto them.
package waypath

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hikesim/internal/assets"
)

// Waypath is an ordered polyline; slice order is traversal order.
type Waypath []mgl32.Vec3

// Source provides raw asset bytes.
type Source interface {
	Load(kind, name string) ([]byte, error)
}

// Load reads a path file through src. Only an unreadable file is an error;
// malformed content truncates the path instead.
func Load(src Source, name string) (Waypath, error) {
	data, err := src.Load(assets.KindWaypath, name)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data)), nil
}

// Parse reads whitespace-separated float triples until EOF or the first
// token that is not a finite number. A trailing partial triple is dropped.
func Parse(r io.Reader) Waypath {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var (
		path   Waypath
		triple [3]float32
		n      int
	)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 32)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			break
		}
		triple[n] = float32(v)
		n++
		if n == 3 {
			path = append(path, mgl32.Vec3(triple))
			n = 0
		}
	}
	return path
}

// VertexData flattens the points into a float buffer for a line strip.
func (p Waypath) VertexData() []float32 {
	data := make([]float32, 0, len(p)*3)
	for _, pt := range p {
		data = append(data, pt[0], pt[1], pt[2])
	}
	return data
}

// Length returns the summed segment lengths in world units.
func (p Waypath) Length() float32 {
	var total float32
	for i := 1; i < len(p); i++ {
		total += p[i].Sub(p[i-1]).Len()
	}
	return total
}
