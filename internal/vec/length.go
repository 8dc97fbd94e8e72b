package vec

import "math"

// Length возвращает евклидову длину вектора или NaN для nil-аргумента.
// Переполнение дает +Inf, отдельной обработки нет.
func (o *Ops) Length(a *Vec3) float32 {
	if !valid(a) {
		o.invalid("length")
		return nan()
	}
	x, y, z := a[0], a[1], a[2]
	return float32(math.Sqrt(float64(x*x + y*y + z*z)))
}

// Normalize записывает в dst вектор a единичной длины.
// Для нулевого или нефинитного вектора сообщает об ошибке и записывает нулевой вектор.
func (o *Ops) Normalize(dst, a *Vec3) {
	if !valid(dst, a) {
		o.invalid("normalize")
		return
	}
	x, y, z := a[0], a[1], a[2]
	length := float32(math.Sqrt(float64(x*x + y*y + z*z)))

	if length == 0 || !isFinite(length) {
		o.fail("normalize", ErrDegenerateGeometry, "cannot normalize zero-length or non-finite vector")
		*dst = Vec3{}
		return
	}

	inv := 1 / length
	dst[0] = x * inv
	dst[1] = y * inv
	dst[2] = z * inv
}
