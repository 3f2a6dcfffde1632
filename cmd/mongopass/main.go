package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mongotools/mongopass/internal/config"
	"github.com/mongotools/mongopass/internal/encoder"
	"github.com/mongotools/mongopass/internal/mongouri"
	"github.com/mongotools/mongopass/internal/prompt"
	"github.com/mongotools/mongopass/internal/report"
	"github.com/mongotools/mongopass/internal/version"
)

const passwordPrompt = "Inserisci la tua password MongoDB: "

func main() {
	logger := logrus.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-shutdown
		logger.WithField("signal", sig).Info("encoding canceled")
		cancel()
	}()

	args, err := parseFlags()
	if err != nil {
		logger.WithError(err).Error("couldn't parse flags")
		os.Exit(1)
	}

	logger.SetLevel(logLevel)
	if logFormat == jsonLogFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if quiet {
		logger.SetOutput(io.Discard)
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.WithError(err).Error("couldn't load config")
		os.Exit(1)
	}

	cfg.Args = args

	if err := run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Error("caught error in main function")
		os.Exit(1)
	}
}

type readResult struct {
	line string
	err  error
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	logger.WithField("version", version.Version).Debug("mongopass started")
	if len(cfg.Args) > 0 {
		logger.WithField("args", strings.Join(cfg.Args, " ")).Debug("used CLI args")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if !prompt.IsInteractive() {
		logger.Debug("stdin is not a terminal, reading the password from piped input")
	}

	report.RenderBanner(os.Stdout)

	promptReader := prompt.NewReader(os.Stdin, os.Stdout)

	lineCh := make(chan readResult, 1)
	go func() {
		line, err := promptReader.ReadLine(passwordPrompt)
		lineCh <- readResult{line: line, err: err}
	}()

	var password string

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-lineCh:
		if res.err != nil {
			return errors.Wrap(res.err, "couldn't read password")
		}
		password = res.line
	}

	encoded, err := encoder.Apply(cfg.Encoder, password)
	if err != nil {
		return errors.Wrap(err, "couldn't encode password")
	}

	cs := mongouri.New(cfg.Username, cfg.Cluster, cfg.Database, encoded)

	rep := &report.Report{
		Password:        password,
		EncodedPassword: encoded,
		URI:             cs.String(),
	}
	if cfg.ShowAll {
		rep.EncoderResults = allEncoderResults(password, logger)
	}

	report.RenderConsoleReport(os.Stdout, rep)

	logger.WithField("uri", cs.Redacted()).Debug("connection string rendered")

	return nil
}

// allEncoderResults encodes the password with every registered encoder.
func allEncoderResults(password string, logger *logrus.Logger) []report.EncoderResult {
	var results []report.EncoderResult

	for _, name := range encoder.Names() {
		encoded, err := encoder.Apply(name, password)
		if err != nil {
			logger.WithError(err).WithField("encoder", name).Warn("couldn't encode password")
			continue
		}

		results = append(results, report.EncoderResult{Name: name, Encoded: encoded})
	}

	return results
}
