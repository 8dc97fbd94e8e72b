package vec

import (
	"math"
	"os"

	"github.com/annel0/v3math/internal/logging"
)

// Vec3 представляет трехмерный вектор (x, y, z) с координатами одинарной точности.
// Операции пакета принимают *Vec3; nil считается недействительной ссылкой.
type Vec3 [3]float32

// Ops — набор операций над Vec3, связанный с каналом диагностики.
// Ops не хранит векторов и не имеет состояния кроме Reporter.
type Ops struct {
	reporter Reporter
}

// New создает набор операций, сообщающий об ошибках в r.
// Если r == nil, диагностика отбрасывается.
func New(r Reporter) *Ops {
	if r == nil {
		r = NopReporter{}
	}
	return &Ops{reporter: r}
}

// std используется функциями уровня пакета
var std = New(logging.NewLogger("vec", os.Stderr, logging.ERROR))

// Default возвращает набор операций, используемый функциями пакета
func Default() *Ops {
	return std
}

// SetDefaultReporter заменяет канал диагностики функций пакета.
// Не предназначен для вызова параллельно с операциями.
func SetDefaultReporter(r Reporter) {
	std = New(r)
}

// Reporter возвращает канал диагностики набора
func (o *Ops) Reporter() Reporter {
	return o.reporter
}

func (o *Ops) fail(op string, kind error, detail string) {
	o.reporter.Report(&OpError{Op: op, Err: kind, Detail: detail})
}

func (o *Ops) invalid(op string) {
	o.fail(op, ErrInvalidReference, "received nil vector")
}

// nan — сигнальное значение для скалярных операций
func nan() float32 {
	return float32(math.NaN())
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func valid(vs ...*Vec3) bool {
	for _, v := range vs {
		if v == nil {
			return false
		}
	}
	return true
}

// FromPoints записывает в dst вектор из точки a в точку b (b - a)
func FromPoints(dst, a, b *Vec3) {
	std.FromPoints(dst, a, b)
}

// Add записывает в dst сумму a + b
func Add(dst, a, b *Vec3) {
	std.Add(dst, a, b)
}

// Subtract записывает в dst разность a - b
func Subtract(dst, a, b *Vec3) {
	std.Subtract(dst, a, b)
}

// DotProduct возвращает скалярное произведение a и b
func DotProduct(a, b *Vec3) float32 {
	return std.DotProduct(a, b)
}

// CrossProduct записывает в dst векторное произведение a × b
func CrossProduct(dst, a, b *Vec3) {
	std.CrossProduct(dst, a, b)
}

// Scale умножает dst на s на месте
func Scale(dst *Vec3, s float32) {
	std.Scale(dst, s)
}

// Length возвращает евклидову длину a
func Length(a *Vec3) float32 {
	return std.Length(a)
}

// Normalize записывает в dst единичный вектор направления a
func Normalize(dst, a *Vec3) {
	std.Normalize(dst, a)
}

// AngleQuick возвращает косинус угла между a и b
func AngleQuick(a, b *Vec3) float32 {
	return std.AngleQuick(a, b)
}

// Angle возвращает угол между a и b в радианах
func Angle(a, b *Vec3) float32 {
	return std.Angle(a, b)
}

// Reflect отражает v относительно нормали n и записывает результат в dst
func Reflect(dst, v, n *Vec3) {
	std.Reflect(dst, v, n)
}

// Equals сравнивает a и b покомпонентно с допуском tol
func Equals(a, b *Vec3, tol float32) bool {
	return std.Equals(a, b, tol)
}
