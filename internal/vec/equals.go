package vec

// Equals возвращает true, если каждая компонента отличается не более чем на |tol|.
// Для nil-аргументов возвращает false и ничего не сообщает.
func (o *Ops) Equals(a, b *Vec3, tol float32) bool {
	if !valid(a, b) {
		return false
	}
	if tol < 0 {
		tol = -tol
	}
	return abs(a[0]-b[0]) <= tol &&
		abs(a[1]-b[1]) <= tol &&
		abs(a[2]-b[2]) <= tol
}
