// pkg/hexmap/noise.go
package hexmap

import (
	"fmt"

	"go-hex-terrain/pkg/utils"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// NoiseKind выбирает реализацию шума.
type NoiseKind string

const (
	NoiseSimplex NoiseKind = "simplex"
	NoisePerlin  NoiseKind = "perlin"
)

// NoiseField samples seeded coherent noise at grid-normalized coordinates.
// Sample is pure, returns values in [0,1] and is safe for concurrent use.
type NoiseField interface {
	Sample(nx, ny float64) float64
	Seed() int64
	Frequency() int
}

// SimplexField — OpenSimplex, по умолчанию.
type SimplexField struct {
	gen  opensimplex.Noise
	seed int64
	freq int
}

func NewSimplexField(seed int64, freq int) *SimplexField {
	return &SimplexField{gen: opensimplex.New(seed), seed: seed, freq: freq}
}

// Sample переводит значение из [-1,1] в [0,1].
func (f *SimplexField) Sample(nx, ny float64) float64 {
	v := f.gen.Eval2(float64(f.freq)*nx, float64(f.freq)*ny)
	return utils.Clamp(v/2+0.5, 0, 1)
}

func (f *SimplexField) Seed() int64    { return f.seed }
func (f *SimplexField) Frequency() int { return f.freq }

// Perlin parameters used by the alternate backend.
const (
	perlinAlpha  = 2
	perlinBeta   = 2
	perlinOctave = 3
)

// PerlinField — классический шум Перлина из go-perlin.
type PerlinField struct {
	gen  *perlin.Perlin
	seed int64
	freq int
}

func NewPerlinField(seed int64, freq int) *PerlinField {
	return &PerlinField{gen: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed), seed: seed, freq: freq}
}

func (f *PerlinField) Sample(nx, ny float64) float64 {
	v := f.gen.Noise2D(float64(f.freq)*nx, float64(f.freq)*ny)
	return utils.Clamp(v/2+0.5, 0, 1)
}

func (f *PerlinField) Seed() int64    { return f.seed }
func (f *PerlinField) Frequency() int { return f.freq }

// NewNoiseField builds the backend named by kind. An empty kind means simplex.
func NewNoiseField(kind NoiseKind, seed int64, freq int) (NoiseField, error) {
	switch kind {
	case NoiseSimplex, "":
		return NewSimplexField(seed, freq), nil
	case NoisePerlin:
		return NewPerlinField(seed, freq), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// Normalize переводит координату клетки в диапазон [-0.5, 0.5).
func Normalize(x, y, width, height int) (nx, ny float64) {
	nx = float64(x)/float64(width) - 0.5
	ny = float64(y)/float64(height) - 0.5
	return
}
