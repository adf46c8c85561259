package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	logFile := cfg.LogFilePath()
	if logFile == "" {
		logFile = "(console only)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Host:     %s\n", cfg.BaseURL())
	fmt.Fprintf(out, "  Timeout:  %s\n", cfg.RequestTimeout())
	fmt.Fprintf(out, "  Log File: %s\n", logFile)
	fmt.Fprintf(out, "  Debug:    %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Strict:   %v\n", cfg.Strict)
}
