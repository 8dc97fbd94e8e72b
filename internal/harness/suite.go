package harness

import (
	"fmt"
	"io"
	"math"

	"github.com/annel0/v3math/internal/config"
	"github.com/annel0/v3math/internal/vec"
)

// Header печатается перед прогоном
const Header = "=== v3test: 3D Math Library Unit Tests ==="

// Suite — набор сценариев над одним набором операций
type Suite struct {
	c     *Checker
	ops   *vec.Ops
	cfg   config.HarnessConfig
	eps   float32
	loose float32
}

// NewSuite создает набор сценариев с допусками из cfg
func NewSuite(c *Checker, ops *vec.Ops, cfg config.HarnessConfig) *Suite {
	return &Suite{c: c, ops: ops, cfg: cfg, eps: cfg.Tolerance, loose: cfg.LooseTolerance}
}

// Groups возвращает группы сценариев в порядке запуска
func (s *Suite) Groups() []Group {
	return []Group{
		{"from_points", s.fromPoints},
		{"add", s.add},
		{"subtract", s.subtract},
		{"dot_product", s.dotProduct},
		{"cross_product", s.crossProduct},
		{"scale", s.scale},
		{"length", s.length},
		{"normalize", s.normalize},
		{"angle", s.angle},
		{"reflect", s.reflect},
		{"invalid_reference", s.invalidReference},
		{"properties", s.properties},
	}
}

// Group — именованная группа проверок
type Group struct {
	Name string
	Run  func()
}

// Run запускает все группы
func (s *Suite) Run() {
	for _, g := range s.Groups() {
		g.Run()
	}
}

func (s *Suite) fromPoints() {
	a := vec.Vec3{1, 2, 3}
	b := vec.Vec3{4, 6, 3}
	var dst vec.Vec3

	s.ops.FromPoints(&dst, &a, &b)
	exp := vec.Vec3{3, 4, 0}
	s.c.ExpectVec("v3_from_points basic", &dst, &exp, s.eps)

	a2 := vec.Vec3{1, 2, 3}
	s.ops.FromPoints(&a2, &a2, &b)
	s.c.ExpectVec("v3_from_points overlap dst==a", &a2, &exp, s.eps)
}

func (s *Suite) add() {
	a := vec.Vec3{1, -2, 3}
	b := vec.Vec3{4, 5, -6}
	var dst vec.Vec3

	s.ops.Add(&dst, &a, &b)
	exp := vec.Vec3{5, 3, -3}
	s.c.ExpectVec("v3_add basic", &dst, &exp, s.eps)

	a2 := vec.Vec3{1, -2, 3}
	s.ops.Add(&a2, &a2, &b)
	s.c.ExpectVec("v3_add overlap dst==a", &a2, &exp, s.eps)

	z := vec.Vec3{}
	s.ops.Add(&dst, &a, &z)
	s.c.ExpectVec("v3_add add zero", &dst, &a, s.eps)
}

func (s *Suite) subtract() {
	a := vec.Vec3{10, 5, -2}
	b := vec.Vec3{3, 7, 4}
	var dst vec.Vec3

	s.ops.Subtract(&dst, &a, &b)
	exp := vec.Vec3{7, -2, -6}
	s.c.ExpectVec("v3_subtract basic", &dst, &exp, s.eps)

	b2 := vec.Vec3{3, 7, 4}
	s.ops.Subtract(&b2, &a, &b2)
	s.c.ExpectVec("v3_subtract overlap dst==b", &b2, &exp, s.eps)

	a2 := vec.Vec3{10, 5, -2}
	s.ops.Subtract(&dst, &a2, &a2)
	z := vec.Vec3{}
	s.c.ExpectVec("v3_subtract self", &dst, &z, s.eps)
}

func (s *Suite) dotProduct() {
	a := vec.Vec3{1, 2, 3}
	b := vec.Vec3{4, -5, 6}
	s.c.ExpectFloat("v3_dot_product basic", s.ops.DotProduct(&a, &b), 12, s.eps)

	x := vec.Vec3{1, 0, 0}
	y := vec.Vec3{0, 1, 0}
	s.c.ExpectFloat("v3_dot_product orthogonal", s.ops.DotProduct(&x, &y), 0, s.eps)

	s.c.ExpectFloat("v3_dot_product self", s.ops.DotProduct(&a, &a), 14, s.eps)
}

func (s *Suite) crossProduct() {
	x := vec.Vec3{1, 0, 0}
	y := vec.Vec3{0, 1, 0}
	var dst vec.Vec3

	s.ops.CrossProduct(&dst, &x, &y)
	z := vec.Vec3{0, 0, 1}
	s.c.ExpectVec("v3_cross_product x×y", &dst, &z, s.eps)

	s.ops.CrossProduct(&dst, &y, &x)
	nz := vec.Vec3{0, 0, -1}
	s.c.ExpectVec("v3_cross_product y×x", &dst, &nz, s.eps)

	a := vec.Vec3{1, 0, 0}
	s.ops.CrossProduct(&a, &a, &y)
	s.c.ExpectVec("v3_cross_product overlap dst==a", &a, &z, s.eps)
}

func (s *Suite) scale() {
	v := vec.Vec3{1, -2, 3}
	s.ops.Scale(&v, 2)
	exp := vec.Vec3{2, -4, 6}
	s.c.ExpectVec("v3_scale by 2", &v, &exp, s.eps)

	s.ops.Scale(&v, 0.5)
	exp2 := vec.Vec3{1, -2, 3}
	s.c.ExpectVec("v3_scale by 0.5", &v, &exp2, s.eps)

	s.ops.Scale(&v, 0)
	z := vec.Vec3{}
	s.c.ExpectVec("v3_scale by 0", &v, &z, s.eps)
}

func (s *Suite) length() {
	v := vec.Vec3{3, 4, 12}
	s.c.ExpectFloat("v3_length 3-4-12", s.ops.Length(&v), 13, s.loose)

	z := vec.Vec3{}
	s.c.ExpectFloat("v3_length zero", s.ops.Length(&z), 0, s.eps)

	n := vec.Vec3{-1, -2, -2}
	s.c.ExpectFloat("v3_length negative components", s.ops.Length(&n), 3, s.loose)
}

func (s *Suite) normalize() {
	v := vec.Vec3{3, 0, 4}
	var dst vec.Vec3
	s.ops.Normalize(&dst, &v)
	exp := vec.Vec3{0.6, 0, 0.8}
	s.c.ExpectVec("v3_normalize 3-0-4", &dst, &exp, s.loose)

	s.c.ExpectFloat("v3_normalize length==1", s.ops.Length(&dst), 1, s.loose)

	v2 := vec.Vec3{0, 5, 0}
	s.ops.Normalize(&v2, &v2)
	exp2 := vec.Vec3{0, 1, 0}
	s.c.ExpectVec("v3_normalize overlap dst==a", &v2, &exp2, s.loose)

	// нулевой вектор дает нулевой вектор и сообщение об ошибке
	z := vec.Vec3{}
	s.ops.Normalize(&dst, &z)
	s.c.ExpectVec("v3_normalize zero vector", &dst, &z, s.eps)
}

func (s *Suite) angle() {
	x := vec.Vec3{1, 0, 0}
	y := vec.Vec3{0, 1, 0}

	s.c.ExpectFloat("v3_angle_quick x,y cos=0", s.ops.AngleQuick(&x, &y), 0, s.eps)
	s.c.ExpectFloat("v3_angle x,y pi/2", s.ops.Angle(&x, &y), math.Pi/2, s.loose)

	a := vec.Vec3{1, 0, 0}
	b := vec.Vec3{1, 0, 0}
	s.c.ExpectFloat("v3_angle_quick same cos=1", s.ops.AngleQuick(&a, &b), 1, s.eps)
	s.c.ExpectFloat("v3_angle same 0", s.ops.Angle(&a, &b), 0, s.loose)

	c := vec.Vec3{-1, 0, 0}
	s.c.ExpectFloat("v3_angle_quick opposite cos=-1", s.ops.AngleQuick(&a, &c), -1, s.eps)
	s.c.ExpectFloat("v3_angle opposite pi", s.ops.Angle(&a, &c), math.Pi, s.loose)

	z := vec.Vec3{}
	nan := float32(math.NaN())
	s.c.ExpectFloat("v3_angle_quick zero vector NaN", s.ops.AngleQuick(&a, &z), nan, s.eps)
	s.c.ExpectFloat("v3_angle zero vector NaN", s.ops.Angle(&z, &a), nan, s.eps)
}

func (s *Suite) reflect() {
	v := vec.Vec3{0, -1, 0}
	n := vec.Vec3{0, 1, 0}
	var dst vec.Vec3
	s.ops.Reflect(&dst, &v, &n)
	exp := vec.Vec3{0, 1, 0}
	s.c.ExpectVec("v3_reflect simple", &dst, &exp, s.eps)

	n2 := vec.Vec3{0, 10, 0}
	s.ops.Reflect(&dst, &v, &n2)
	s.c.ExpectVec("v3_reflect non-unit normal", &dst, &exp, s.eps)

	v2 := vec.Vec3{1, -1, 0}
	n3 := vec.Vec3{0, 1, 0}
	s.ops.Reflect(&v2, &v2, &n3)
	exp2 := vec.Vec3{1, 1, 0}
	s.c.ExpectVec("v3_reflect overlap dst==v", &v2, &exp2, s.eps)

	z := vec.Vec3{}
	v3 := vec.Vec3{1, 2, 3}
	s.ops.Reflect(&dst, &v3, &z)
	s.c.ExpectVec("v3_reflect zero normal copies v", &dst, &v3, s.eps)
}

func (s *Suite) invalidReference() {
	a := vec.Vec3{1, 2, 3}
	dst := vec.Vec3{7, 8, 9}
	keep := dst
	nan := float32(math.NaN())

	s.ops.Add(&dst, nil, &a)
	s.ops.Subtract(&dst, &a, nil)
	s.ops.FromPoints(&dst, nil, nil)
	s.ops.CrossProduct(&dst, nil, &a)
	s.ops.Normalize(&dst, nil)
	s.ops.Reflect(&dst, &a, nil)
	s.ops.Scale(nil, 3)
	s.c.ExpectVec("v3 nil argument leaves dst untouched", &dst, &keep, 0)

	s.c.ExpectFloat("v3_dot_product nil NaN", s.ops.DotProduct(nil, &a), nan, s.eps)
	s.c.ExpectFloat("v3_length nil NaN", s.ops.Length(nil), nan, s.eps)
	s.c.ExpectFloat("v3_angle_quick nil NaN", s.ops.AngleQuick(&a, nil), nan, s.eps)
	s.c.ExpectFloat("v3_angle nil NaN", s.ops.Angle(nil, nil), nan, s.eps)
	s.c.ExpectTrue("v3_equals nil false", !s.ops.Equals(nil, &a, 1))
}

// Run печатает заголовок, выполняет все группы и итог.
// Возвращает код завершения и число отказов.
func Run(out io.Writer, ops *vec.Ops, cfg config.HarnessConfig) (int, int) {
	fmt.Fprintf(out, "%s\n\n", Header)

	c := NewChecker(out, ops)
	NewSuite(c, ops, cfg).Run()

	return c.Summary(), c.Failures()
}
