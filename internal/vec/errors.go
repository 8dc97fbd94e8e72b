package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference — операции передана nil-ссылка на вектор
	ErrInvalidReference = errors.New("invalid vector reference")
	// ErrDegenerateGeometry — результат не определен для нулевого или нефинитного вектора
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// OpError описывает отказ конкретной операции
type OpError struct {
	Op     string
	Err    error
	Detail string
}

func (e *OpError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("v3_%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("v3_%s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Kind возвращает короткое имя класса ошибки для меток и логов
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidReference):
		return "invalid_reference"
	case errors.Is(err, ErrDegenerateGeometry):
		return "degenerate_geometry"
	default:
		return "unknown"
	}
}
