package util

import (
	"github.com/aquilax/go-perlin"

	"github.com/annel0/v3math/internal/vec"
)

const (
	alpha  = 2.0  // Сглаживание шума
	beta   = 2.0  // Частота шума
	octave = 3    // Количество октав
	step   = 0.37 // Шаг между образцами, не кратный решетке
)

// NoiseSampler выдает детерминированную последовательность векторов из шума Перлина.
// В целых узлах решетки шум равен нулю, поэтому координаты смещены.
type NoiseSampler struct {
	noise *perlin.Perlin
	scale float32
}

// NewNoiseSampler создает генератор с указанным сидом.
// Компоненты векторов лежат примерно в [-scale, scale].
func NewNoiseSampler(seed int64, scale float32) *NoiseSampler {
	return &NoiseSampler{
		noise: perlin.NewPerlin(alpha, beta, octave, seed),
		scale: scale,
	}
}

// Sample возвращает i-й вектор последовательности
func (s *NoiseSampler) Sample(i int) vec.Vec3 {
	t := float64(i)*step + 0.5
	return vec.Vec3{
		float32(s.noise.Noise3D(t, 0.25, 0.75)) * s.scale,
		float32(s.noise.Noise3D(0.75, t, 0.25)) * s.scale,
		float32(s.noise.Noise3D(0.25, 0.75, t)) * s.scale,
	}
}

// Samples возвращает первые n векторов
func (s *NoiseSampler) Samples(n int) []vec.Vec3 {
	out := make([]vec.Vec3, n)
	for i := range out {
		out[i] = s.Sample(i)
	}
	return out
}
