package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/fitlog/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName string
	// LogToConsole keeps logging to Console when a log file is set
	LogToConsole bool
	// Console defaults to STDERR, so logs don't mix with the prompts on STDOUT
	Console          io.Writer
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the standard logrus logger.
// The returned func flushes buffered Sentry events and should be called before exiting.
func Setup(params LoggerSetupParams) func() {
	return setup(logrus.StandardLogger(), params)
}

func setup(logger *logrus.Logger, params LoggerSetupParams) func() {
	flush := func() {}

	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.Console == nil {
		params.Console = os.Stderr
	}

	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment: params.Environment,
			Dsn:         params.SentryDSN,
			ServerName:  params.SentryServerName,
		})
		if err != nil {
			logger.Errorf("sentry.Init: %s", err)
		} else {
			logger.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			flush = func() {
				sentry.Flush(2 * time.Second)
			}
			logger.Infoln("sentry set up successfully")
		}
	}

	logger.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logger.SetOutput(params.Console)
		return flush
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		LocalTime:  false,
		Compress:   true,
	}

	if params.LogToConsole {
		logger.SetOutput(pkg.NewCombinedWriter(params.Console, lumberJackLogger))
	} else {
		logger.SetOutput(lumberJackLogger)
	}

	return func() {
		flush()
		if err := lumberJackLogger.Close(); err != nil {
			logger.Errorf("close log file: %s", err)
		}
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
