package vec

// Reporter принимает диагностику операций.
// Канал предназначен только для наблюдения: операции не меняют поведение
// в зависимости от того, что сделал Reporter.
type Reporter interface {
	Report(err error)
}

// ReporterFunc адаптирует функцию к Reporter
type ReporterFunc func(err error)

// Report вызывает f(err)
func (f ReporterFunc) Report(err error) {
	f(err)
}

// NopReporter отбрасывает диагностику
type NopReporter struct{}

// Report ничего не делает
func (NopReporter) Report(error) {}

// MultiReporter рассылает диагностику нескольким получателям по порядку
type MultiReporter []Reporter

// Report передает err каждому получателю
func (m MultiReporter) Report(err error) {
	for _, r := range m {
		if r != nil {
			r.Report(err)
		}
	}
}
