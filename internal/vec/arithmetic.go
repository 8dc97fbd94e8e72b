package vec

// Все операции сначала копируют компоненты источников в локальные переменные,
// поэтому dst может совпадать с любым из аргументов.

// FromPoints записывает в dst вектор из точки a в точку b: dst = b - a
func (o *Ops) FromPoints(dst, a, b *Vec3) {
	if !valid(dst, a, b) {
		o.invalid("from_points")
		return
	}
	ax, ay, az := a[0], a[1], a[2]
	bx, by, bz := b[0], b[1], b[2]
	dst[0] = bx - ax
	dst[1] = by - ay
	dst[2] = bz - az
}

// Add складывает два вектора: dst = a + b
func (o *Ops) Add(dst, a, b *Vec3) {
	if !valid(dst, a, b) {
		o.invalid("add")
		return
	}
	ax, ay, az := a[0], a[1], a[2]
	bx, by, bz := b[0], b[1], b[2]
	dst[0] = ax + bx
	dst[1] = ay + by
	dst[2] = az + bz
}

// Subtract вычитает вектор: dst = a - b
func (o *Ops) Subtract(dst, a, b *Vec3) {
	if !valid(dst, a, b) {
		o.invalid("subtract")
		return
	}
	ax, ay, az := a[0], a[1], a[2]
	bx, by, bz := b[0], b[1], b[2]
	dst[0] = ax - bx
	dst[1] = ay - by
	dst[2] = az - bz
}

// Scale умножает вектор на скаляр на месте: dst *= s.
// Отдельного источника нет.
func (o *Ops) Scale(dst *Vec3, s float32) {
	if !valid(dst) {
		o.invalid("scale")
		return
	}
	dst[0] *= s
	dst[1] *= s
	dst[2] *= s
}

// DotProduct возвращает скалярное произведение a·b или NaN для nil-аргумента
func (o *Ops) DotProduct(a, b *Vec3) float32 {
	if !valid(a, b) {
		o.invalid("dot_product")
		return nan()
	}
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// CrossProduct записывает в dst правое векторное произведение a × b
func (o *Ops) CrossProduct(dst, a, b *Vec3) {
	if !valid(dst, a, b) {
		o.invalid("cross_product")
		return
	}
	ax, ay, az := a[0], a[1], a[2]
	bx, by, bz := b[0], b[1], b[2]
	dst[0] = ay*bz - az*by
	dst[1] = az*bx - ax*bz
	dst[2] = ax*by - ay*bx
}
