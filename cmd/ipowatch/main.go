package main

import (
	"fmt"
	"os"
	"strings"

	"ipowatch/internal/cli"
	"ipowatch/internal/config"
	"ipowatch/internal/logging"
)

func main() {
	cfg, err := config.Load(configDirFromArgs(os.Args[1:]))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ipowatch:", err)
		os.Exit(cli.ExitCode(err))
	}

	logger := logging.NewLogger()

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(cli.ExitCode(err))
	}
}

// configDirFromArgs peeks at --config before cobra parses flags, since
// configuration must be loaded to build the command tree.
func configDirFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, "--config="); ok {
			return v
		}
	}
	return ""
}
