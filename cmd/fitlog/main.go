package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/internal/console"
	"github.com/2beens/fitlog/internal/display"
	"github.com/2beens/fitlog/internal/logging"
	"github.com/2beens/fitlog/internal/onerepmax"
	"github.com/2beens/fitlog/internal/tracker"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file (defaults are used if missing)")
	exerciseName := flag.String("exercise", "", "exercise to export the 1RM data for (overrides config)")
	outPath := flag.String("out", "", "1RM CSV output path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}
	if *exerciseName != "" {
		cfg.ExportExercise = *exerciseName
	}
	if *outPath != "" {
		cfg.ExportPath = *outPath
	}

	flushLogs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToConsole:     cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fitlog",
	})
	defer flushLogs()

	log.Debugf("running in [%s] environment", cfg.Environment)
	log.Debugf("1RM export: [%s] -> %s", cfg.ExportExercise, cfg.ExportPath)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Errorf("fitlog: %s", err)
		flushLogs()
		os.Exit(1)
	}
}

func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	t := tracker.New()

	added, err := console.New(in, out, t).Run()
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	log.Debugf("%d exercises added", added)

	if cfg.ShowLog {
		if err := display.WriteLog(out, t.Log().List()); err != nil {
			return fmt.Errorf("display log: %w", err)
		}
	}
	if err := display.WriteDatabase(out, t.Database().Entries()); err != nil {
		return fmt.Errorf("display database: %w", err)
	}

	exporter := onerepmax.NewExporter(t.Database())
	res, err := exporter.Export(cfg.ExportExercise, cfg.ExportPath)
	if err != nil {
		// not fatal, the logged exercises were already printed
		log.Errorf("export 1RM data: %s", err)
		fmt.Fprintln(out, "Unable to open file for writing.")
		return nil
	}
	if res.Skipped > 0 {
		fmt.Fprintf(out, "%d %s sets skipped (reps must be below %d)\n", res.Skipped, cfg.ExportExercise, onerepmax.MaxReps)
	}
	fmt.Fprintf(out, "1RM data exported to %s\n", res.Path)

	return nil
}
