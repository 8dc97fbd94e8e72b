package harness

import (
	"fmt"
	"math"

	"github.com/annel0/v3math/internal/util"
	"github.com/annel0/v3math/internal/vec"
)

// minLength — образцы короче этого не участвуют в проверках нормализации и углов
const minLength = 1e-3

// properties проверяет алгебраические свойства на образцах шума Перлина.
// Допуск масштабируется по величине ожидаемого значения.
func (s *Suite) properties() {
	n := s.cfg.GetNoiseSamples()
	if n == 0 {
		return
	}
	samples := util.NewNoiseSampler(s.cfg.GetNoiseSeed(), s.cfg.NoiseScale).Samples(n + 1)

	var bad struct {
		inverse, dot, anti, unit, idem, angle, reflect int
	}

	for i := 0; i < n; i++ {
		a, b := samples[i], samples[i+1]
		mag := s.ops.Length(&a) + s.ops.Length(&b)
		tol := s.loose * (1 + mag)

		var sum, back vec.Vec3
		s.ops.Add(&sum, &a, &b)
		s.ops.Subtract(&back, &sum, &b)
		if !s.ops.Equals(&back, &a, tol) {
			bad.inverse++
		}

		la := s.ops.Length(&a)
		if !FloatEquals(s.ops.DotProduct(&a, &a), la*la, s.loose*(1+la*la)) {
			bad.dot++
		}

		var ab, ba vec.Vec3
		s.ops.CrossProduct(&ab, &a, &b)
		s.ops.CrossProduct(&ba, &b, &a)
		s.ops.Scale(&ba, -1)
		if !s.ops.Equals(&ab, &ba, tol*(1+mag)) {
			bad.anti++
		}

		if la < minLength {
			continue
		}

		var u, uu vec.Vec3
		s.ops.Normalize(&u, &a)
		if !FloatEquals(s.ops.Length(&u), 1, s.loose) {
			bad.unit++
		}
		s.ops.Normalize(&uu, &u)
		if !s.ops.Equals(&uu, &u, s.eps*10) {
			bad.idem++
		}

		neg := a
		s.ops.Scale(&neg, -1)
		if !FloatEquals(s.ops.AngleQuick(&a, &a), 1, s.loose) ||
			!FloatEquals(s.ops.AngleQuick(&a, &neg), -1, s.loose) ||
			!FloatEquals(s.ops.Angle(&a, &neg), math.Pi, 1e-2) {
			bad.angle++
		}

		if s.ops.Length(&b) < minLength {
			continue
		}
		var separate vec.Vec3
		s.ops.Reflect(&separate, &a, &b)
		inPlace := a
		s.ops.Reflect(&inPlace, &inPlace, &b)
		if !s.ops.Equals(&separate, &inPlace, 0) ||
			!FloatEquals(s.ops.Length(&separate), la, tol) {
			bad.reflect++
		}
	}

	name := func(p string) string {
		return fmt.Sprintf("property %s over %d noise samples", p, n)
	}
	s.c.ExpectTrue(name("(a+b)-b == a"), bad.inverse == 0)
	s.c.ExpectTrue(name("a·a == |a|²"), bad.dot == 0)
	s.c.ExpectTrue(name("a×b == -(b×a)"), bad.anti == 0)
	s.c.ExpectTrue(name("|normalize(a)| == 1"), bad.unit == 0)
	s.c.ExpectTrue(name("normalize idempotent"), bad.idem == 0)
	s.c.ExpectTrue(name("angle(a,±a)"), bad.angle == 0)
	s.c.ExpectTrue(name("reflect overlap-safe"), bad.reflect == 0)
}
