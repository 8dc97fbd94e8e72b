package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/v3math/internal/vec"
)

func TestReporter_CountsFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	var forwarded []error
	next := vec.ReporterFunc(func(err error) { forwarded = append(forwarded, err) })

	r, err := NewReporter(reg, next)
	require.NoError(t, err)

	ops := vec.New(r)
	zero := vec.Vec3{}
	v := vec.Vec3{1, 2, 3}
	var dst vec.Vec3

	ops.Normalize(&dst, &zero)
	ops.Normalize(&dst, &zero)
	ops.Add(&dst, nil, &v)
	ops.Reflect(&dst, &v, &zero)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.Failures().WithLabelValues("normalize", "degenerate_geometry")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Failures().WithLabelValues("add", "invalid_reference")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Failures().WithLabelValues("reflect", "degenerate_geometry")))
	assert.Equal(t, 3, testutil.CollectAndCount(r.Failures()))
	assert.Len(t, forwarded, 5, "диагностика должна передаваться дальше")
}

func TestReporter_UnknownAndNil(t *testing.T) {
	r, err := NewReporter(nil, nil)
	require.NoError(t, err)

	r.Report(nil)
	r.Report(errors.New("foreign"))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Failures().WithLabelValues("unknown", "unknown")))
}

func TestNewReporter_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewReporter(reg, nil)
	require.NoError(t, err)

	_, err = NewReporter(reg, nil)
	assert.Error(t, err, "повторная регистрация должна вернуть ошибку")
}
