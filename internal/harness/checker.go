// Package harness реализует проверочный прогон библиотеки: строки PASS/FAIL,
// счетчик отказов и код завершения процесса.
package harness

import (
	"fmt"
	"io"
	"math"

	"github.com/annel0/v3math/internal/vec"
)

// Checker печатает результаты проверок в out и считает отказы
type Checker struct {
	out      io.Writer
	ops      *vec.Ops
	passed   int
	failures int
}

// NewChecker создает Checker. Векторы сравниваются через ops.Equals.
func NewChecker(out io.Writer, ops *vec.Ops) *Checker {
	if ops == nil {
		ops = vec.Default()
	}
	return &Checker{out: out, ops: ops}
}

// FormatVec печатает вектор как [x, y, z] с шестью знаками
func FormatVec(v *vec.Vec3) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("[%.6f, %.6f, %.6f]", v[0], v[1], v[2])
}

// ExpectVec проверяет, что actual совпадает с expected с допуском tol
func (c *Checker) ExpectVec(name string, actual, expected *vec.Vec3, tol float32) bool {
	if c.ops.Equals(actual, expected, tol) {
		c.pass(name)
		return true
	}
	fmt.Fprintf(c.out, "FAIL: %s\n  expected=%s\n  actual  =%s\n  tol=%g\n",
		name, FormatVec(expected), FormatVec(actual), tol)
	c.failures++
	return false
}

// FloatEquals сравнивает скаляры с допуском; два NaN считаются равными
func FloatEquals(actual, expected, tol float32) bool {
	if math.IsNaN(float64(expected)) && math.IsNaN(float64(actual)) {
		return true
	}
	return math.Abs(float64(actual-expected)) <= math.Abs(float64(tol))
}

// ExpectFloat проверяет скаляр с допуском tol
func (c *Checker) ExpectFloat(name string, actual, expected, tol float32) bool {
	if FloatEquals(actual, expected, tol) {
		c.pass(name)
		return true
	}
	fmt.Fprintf(c.out, "FAIL: %s\n  expected=%.8f actual=%.8f tol=%g\n",
		name, expected, actual, tol)
	c.failures++
	return false
}

// ExpectTrue проверяет логическое условие
func (c *Checker) ExpectTrue(name string, ok bool) bool {
	if ok {
		c.pass(name)
		return true
	}
	fmt.Fprintf(c.out, "FAIL: %s\n", name)
	c.failures++
	return false
}

func (c *Checker) pass(name string) {
	fmt.Fprintf(c.out, "PASS: %s\n", name)
	c.passed++
}

// Passed возвращает число успешных проверок
func (c *Checker) Passed() int {
	return c.passed
}

// Failures возвращает число проваленных проверок
func (c *Checker) Failures() int {
	return c.failures
}

// Summary печатает итог и возвращает код завершения: 0 или 1
func (c *Checker) Summary() int {
	fmt.Fprintf(c.out, "\n=== Summary ===\n")
	if c.failures == 0 {
		fmt.Fprintln(c.out, "ALL TESTS PASSED")
		return 0
	}
	fmt.Fprintf(c.out, "FAILURES: %d\n", c.failures)
	return 1
}
