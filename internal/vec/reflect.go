package vec

// Reflect отражает v относительно нормали n: dst = v - 2(v·n̂)n̂.
// n нормализуется во временный буфер и не изменяется. Если n вырожден,
// операция сообщает об ошибке и копирует v в dst.
func (o *Ops) Reflect(dst, v, n *Vec3) {
	if !valid(dst, v, n) {
		o.invalid("reflect")
		return
	}

	var nn Vec3
	o.Normalize(&nn, n)

	if l := o.Length(&nn); l == 0 || !isFinite(l) {
		o.fail("reflect", ErrDegenerateGeometry, "normal vector is zero-length or non-finite")
		*dst = *v
		return
	}

	vx, vy, vz := v[0], v[1], v[2]
	d := vx*nn[0] + vy*nn[1] + vz*nn[2]

	dst[0] = vx - 2*d*nn[0]
	dst[1] = vy - 2*d*nn[1]
	dst[2] = vz - 2*d*nn[2]
}
