package config

// Size constants.
const (
	KiB = 1024
	MiB = KiB * 1024
)

// DefaultPort is the port the demo server listens on unless overridden.
const DefaultPort = "2442"

// DefaultLogLevel is the log level used when none is given on the command line.
const DefaultLogLevel = "info"
