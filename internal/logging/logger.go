package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает имя уровня без учета регистра
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger представляет логгер компонента: консоль и, при наличии, файл
type Logger struct {
	mu              sync.Mutex
	component       string
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            *os.File
	minConsoleLevel LogLevel
	minFileLevel    LogLevel
}

// Глобальный логгер для функций уровня пакета
var defaultLogger = NewLogger("", os.Stdout, INFO)

// NewLogger создает логгер, пишущий в w сообщения уровня minLevel и выше
func NewLogger(component string, w io.Writer, minLevel LogLevel) *Logger {
	return &Logger{
		component:       component,
		consoleLogger:   log.New(w, "", 0),
		minConsoleLevel: minLevel,
		minFileLevel:    minLevel,
	}
}

// NewFileLogger создает логгер, дублирующий сообщения в файл
// dir/<component>_<timestamp>.log. В файл пишутся все уровни от fileLevel.
func NewFileLogger(component, dir string, console io.Writer, consoleLevel, fileLevel LogLevel) (*Logger, error) {
	// Создаем директорию для логов
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", dir, err)
	}

	name := component
	if name == "" {
		name = "v3math"
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := NewLogger(component, console, consoleLevel)
	l.file = file
	l.fileLogger = log.New(file, "", log.LstdFlags)
	l.minFileLevel = fileLevel
	return l, nil
}

// Component возвращает имя компонента
func (l *Logger) Component() string {
	return l.component
}

// SetLevels меняет пороги вывода в консоль и файл
func (l *Logger) SetLevels(consoleLevel, fileLevel LogLevel) {
	l.mu.Lock()
	l.minConsoleLevel = consoleLevel
	l.minFileLevel = fileLevel
	l.mu.Unlock()
}

// Close закрывает файл логов, если он открыт
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.fileLogger = nil
	return err
}

// Trace логирует сообщение уровня TRACE
func (l *Logger) Trace(format string, args ...interface{}) {
	l.log(TRACE, format, args...)
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Report пишет диагностику операции на уровне ERROR.
// Благодаря этому методу Logger можно передать в vec.New.
func (l *Logger) Report(err error) {
	if err == nil {
		return
	}
	l.log(ERROR, "%v", err)
}

// log внутренняя функция для логирования
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var message string
	if level == ERROR {
		// диагностика операций печатается как "Error: ..."
		message = "Error: " + fmt.Sprintf(format, args...)
	} else {
		message = fmt.Sprintf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
	}
	if l.component != "" {
		message = "[" + l.component + "] " + message
	}

	if l.fileLogger != nil && level >= l.minFileLevel {
		l.fileLogger.Println(message)
	}
	if level >= l.minConsoleLevel {
		l.consoleLogger.Println(message)
	}
}

// SetDefault заменяет глобальный логгер
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// LogDebug логирует сообщение уровня DEBUG глобальным логгером
func LogDebug(format string, args ...interface{}) {
	defaultLogger.Debug(format, args...)
}

// LogInfo логирует сообщение уровня INFO глобальным логгером
func LogInfo(format string, args ...interface{}) {
	defaultLogger.Info(format, args...)
}

// LogWarn логирует сообщение уровня WARN глобальным логгером
func LogWarn(format string, args ...interface{}) {
	defaultLogger.Warn(format, args...)
}

// LogError логирует сообщение уровня ERROR глобальным логгером
func LogError(format string, args ...interface{}) {
	defaultLogger.Error(format, args...)
}
