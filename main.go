package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/txn-analyzer/cmd/query"
	"fjacquet/txn-analyzer/cmd/root"
	"fjacquet/txn-analyzer/cmd/summary"
	"fjacquet/txn-analyzer/internal/config"
	"fjacquet/txn-analyzer/internal/logging"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	config.LoadEnv(logging.Nop())

	// 2. Set the level of the startup logger before anything logs
	configureLogLevelDirectly()

	// 3. Initialize root command, then add subcommands
	root.Init()
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(query.Cmd)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL and
// returns it. Unknown values fall back to info.
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := config.GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
