package main

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mongotools/mongopass/internal/config"
	"github.com/mongotools/mongopass/internal/encoder"
	"github.com/mongotools/mongopass/internal/mongouri"
	"github.com/mongotools/mongopass/internal/version"
)

const (
	textLogFormat = "text"
	jsonLogFormat = "json"
)

var (
	logFormatsSet = map[string]any{
		textLogFormat: nil,
		jsonLogFormat: nil,
	}
	logFormats = slices.Collect(maps.Keys(logFormatsSet))
)

const defaultConfigPath = "config.yaml"

const cliDescription = `Mongopass percent-encodes a MongoDB password so it can be pasted into a
mongodb+srv:// connection string. The password is read from standard input
and is never logged.

Usage: %s [OPTIONS]

Options:
`

var (
	configPath string
	quiet      bool
	logLevel   logrus.Level
	logFormat  string
)

var usage = func() {
	flag.CommandLine.SetOutput(os.Stdout)
	usage := cliDescription
	fmt.Fprintf(os.Stdout, usage, os.Args[0])
	flag.PrintDefaults()
}

// parseFlags parses all mongopass CLI flags
func parseFlags() (args []string, err error) {
	flag.Usage = usage

	// General parameters
	flag.StringVar(&configPath, "configPath", defaultConfigPath, "Path to the config file")
	flag.BoolVar(&quiet, "quiet", false, "If present, disable verbose logging")
	logLvl := flag.String("logLevel", "info", "Logging level: panic, fatal, error, warn, info, debug, trace")
	flag.StringVar(&logFormat, "logFormat", textLogFormat, "Set logging format: "+strings.Join(logFormats, ", "))
	showVersion := flag.Bool("version", false, "Show mongopass version and exit")

	// URI template settings
	flag.String("username", mongouri.DefaultUsername, "Username to substitute into the connection string")
	flag.String("cluster", mongouri.DefaultCluster, "Cluster host to substitute into the connection string")
	flag.String("database", mongouri.DefaultDatabase, "Database name to substitute into the connection string")

	// Encoding settings
	flag.String("encoder", encoder.DefaultURIComponentEncoder.GetName(),
		"Encoder to apply: "+strings.Join(encoder.Names(), ", "))
	flag.Bool("showAll", false, "If present, print a table with the password encoded by every encoder")
	listEncoders := flag.Bool("listEncoders", false, "List available encoders and exit")

	flag.Parse()

	// show version and exit
	if *showVersion == true {
		fmt.Fprintf(os.Stderr, "mongopass %s\n", version.Version)
		os.Exit(0)
	}

	if *listEncoders == true {
		fmt.Fprintln(os.Stdout, strings.Join(encoder.Names(), "\n"))
		os.Exit(0)
	}

	logrusLogLvl, err := logrus.ParseLevel(*logLvl)
	if err != nil {
		return nil, err
	}
	logLevel = logrusLogLvl

	if err = validateLogFormat(logFormat); err != nil {
		return nil, err
	}

	args, err = normalizeArgs()
	if err != nil {
		return nil, err
	}

	return args, nil
}

// normalizeArgs returns the used CLI args in a unified form.
func normalizeArgs() ([]string, error) {
	// disable lexicographical order
	flag.CommandLine.SortFlags = false

	var args []string

	fn := func(f *flag.Flag) {
		// skip if flag wasn't changed
		if !f.Changed {
			return
		}

		switch f.Value.Type() {
		case "bool":
			args = append(args, fmt.Sprintf("--%s", f.Name))
		default:
			value := strings.TrimSpace(f.Value.String())
			if strings.Contains(value, " ") {
				value = `"` + value + `"`
			}
			args = append(args, fmt.Sprintf("--%s=%s", f.Name, value))
		}
	}

	// get all changed flags
	flag.Visit(fn)

	return args, nil
}

// loadConfig loads the specified config file and merges it with the parameters passed via CLI
func loadConfig() (cfg *config.Config, err error) {
	err = viper.BindPFlags(flag.CommandLine)
	if err != nil {
		return nil, err
	}
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("MONGOPASS")
	viper.AutomaticEnv()

	// the default config file is optional, an explicitly passed one is not
	if _, statErr := os.Stat(configPath); statErr == nil {
		viper.SetConfigFile(configPath)

		err = viper.ReadInConfig()
		if err != nil {
			return nil, err
		}
	} else if configPath != defaultConfigPath {
		return nil, statErr
	}

	err = viper.Unmarshal(&cfg)
	return
}
