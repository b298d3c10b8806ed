package config

import "os"

// LogNoColor disables colored console output.
// Enabled when the MOVABLE_LOG_NO_COLOR environment variable is set to "1".
func LogNoColor() bool {
	return os.Getenv("MOVABLE_LOG_NO_COLOR") == "1"
}

// DisableRuntimeMetrics skips registration of the Go runtime and process
// collectors. Enabled when the MOVABLE_NO_RUNTIME_METRICS environment
// variable is set to "1".
func DisableRuntimeMetrics() bool {
	return os.Getenv("MOVABLE_NO_RUNTIME_METRICS") == "1"
}
