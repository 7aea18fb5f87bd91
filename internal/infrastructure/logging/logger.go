package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/usecase/interfaces"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// Logger returns the process-wide structured logger. Level comes from
// LOG_LEVEL (default info), output is JSON on stdout.
func Logger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)

		level, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)
	})
	return logger
}

// LogrusNotifier emits wizard notifications as structured log entries.
// Success goes out at info level, everything else at warn.
type LogrusNotifier struct {
	log *logrus.Logger
}

var _ interfaces.INotifier = (*LogrusNotifier)(nil)

func NewLogrusNotifier(log *logrus.Logger) *LogrusNotifier {
	return &LogrusNotifier{log: log}
}

func (n *LogrusNotifier) Notify(severity entities.Severity, title, message string) {
	entry := n.log.WithFields(logrus.Fields{
		"severity": string(severity),
		"title":    title,
	})
	if severity == entities.SeveritySuccess {
		entry.Info(message)
		return
	}
	entry.Warn(message)
}
