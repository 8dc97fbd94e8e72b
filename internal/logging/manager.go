package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// ManagerOptions задает параметры создания логгеров компонентов
type ManagerOptions struct {
	Dir          string // пусто — только консоль
	Console      io.Writer
	ConsoleLevel LogLevel
	FileLevel    LogLevel
}

// LoggerManager управляет логгерами для разных компонентов
type LoggerManager struct {
	mu      sync.RWMutex
	opts    ManagerOptions
	loggers map[string]*Logger
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// NewLoggerManager создает менеджер с заданными параметрами
func NewLoggerManager(opts ManagerOptions) *LoggerManager {
	if opts.Console == nil {
		opts.Console = os.Stderr
	}
	return &LoggerManager{
		opts:    opts,
		loggers: make(map[string]*Logger),
	}
}

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = NewLoggerManager(ManagerOptions{ConsoleLevel: INFO, FileLevel: DEBUG})
	})
	return globalManager
}

// Configure меняет параметры для логгеров, создаваемых после вызова
func (lm *LoggerManager) Configure(opts ManagerOptions) {
	if opts.Console == nil {
		opts.Console = os.Stderr
	}
	lm.mu.Lock()
	lm.opts = opts
	lm.mu.Unlock()
}

// GetLogger возвращает логгер для компонента, создавая его при необходимости
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.RLock()
	if logger, exists := lm.loggers[component]; exists {
		lm.mu.RUnlock()
		return logger, nil
	}
	lm.mu.RUnlock()

	lm.mu.Lock()
	defer lm.mu.Unlock()

	// Проверяем еще раз на случай гонки
	if logger, exists := lm.loggers[component]; exists {
		return logger, nil
	}

	var logger *Logger
	if lm.opts.Dir == "" {
		logger = NewLogger(component, lm.opts.Console, lm.opts.ConsoleLevel)
	} else {
		var err error
		logger, err = NewFileLogger(component, lm.opts.Dir, lm.opts.Console, lm.opts.ConsoleLevel, lm.opts.FileLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger for %s: %w", component, err)
		}
	}

	lm.loggers[component] = logger
	return logger, nil
}

// MustGetLogger возвращает логгер или консольный fallback при ошибке
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	logger, err := lm.GetLogger(component)
	if err != nil {
		lm.mu.RLock()
		defer lm.mu.RUnlock()
		return NewLogger(component, lm.opts.Console, lm.opts.ConsoleLevel)
	}
	return logger
}

// CloseAll закрывает все логгеры
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var lastErr error
	for component, logger := range lm.loggers {
		if err := logger.Close(); err != nil {
			lastErr = fmt.Errorf("failed to close logger for %s: %w", component, err)
		}
	}

	lm.loggers = make(map[string]*Logger)
	return lastErr
}

// ListComponents возвращает отсортированный список зарегистрированных компонентов
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.RLock()
	defer lm.mu.RUnlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// SetLogLevel устанавливает уровень логирования для компонента
func (lm *LoggerManager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	lm.mu.RLock()
	logger, exists := lm.loggers[component]
	lm.mu.RUnlock()

	if !exists {
		return fmt.Errorf("logger for component %s not found", component)
	}

	logger.SetLevels(consoleLevel, fileLevel)
	return nil
}

// GetComponentLogger возвращает логгер компонента из глобального менеджера
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}
