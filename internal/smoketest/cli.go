package smoketest

import (
	"os"

	"github.com/mergington/activities/pkg/logger"
)

// ShowHelp prints usage information for the smoke CLI.
func ShowHelp() {
	help := `activities smoke runner

Exercises a running activities instance end to end: verifies the root
redirect and health endpoint, then runs signup/unregister rounds with
generated emails and checks the duplicate and absent rejections.

Usage:
  smoke [flags]

Flags:
  -url string       Base URL of the service (default "http://localhost:8000")
  -rounds int       Number of signup/unregister rounds (default 20)
  -timeout duration HTTP request timeout (default 10s)
  -verbose          Enable verbose logging
  -help             Show this help
`
	_, _ = os.Stdout.WriteString(help)
}

// SetupLogging initializes the global logger for the CLI run.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return err
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}
