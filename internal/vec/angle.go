package vec

import "math"

// AngleQuick возвращает cos(θ) между a и b, ограниченный отрезком [-1, 1].
// Для nil, нулевого или нефинитного вектора возвращает NaN.
func (o *Ops) AngleQuick(a, b *Vec3) float32 {
	if !valid(a, b) {
		o.invalid("angle_quick")
		return nan()
	}
	la := o.Length(a)
	lb := o.Length(b)
	if la == 0 || lb == 0 || !isFinite(la) || !isFinite(lb) {
		o.fail("angle_quick", ErrDegenerateGeometry, "undefined for zero-length or non-finite vectors")
		return nan()
	}
	cos := o.DotProduct(a, b) / (la * lb)
	// погрешность округления может вывести значение за пределы области acos
	return clamp(cos, -1, 1)
}

// Angle возвращает угол между a и b в радианах, [0, π].
// Вырожденный случай из AngleQuick передается дальше как NaN.
func (o *Ops) Angle(a, b *Vec3) float32 {
	cos := o.AngleQuick(a, b)
	if !isFinite(cos) {
		return nan()
	}
	return float32(math.Acos(float64(cos)))
}
