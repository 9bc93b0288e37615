package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file as well")
	flagPrecision  = flag.Int("precision", -1, "Digits printed after the decimal point")
	flagConvention = flag.String("convention", "", "Matrix convention: row or column")
	flagStrict     = flag.Bool("strict", false, "Fail on singular inverses and zero axes")
	flagInverse    = flag.Bool("inverse", false, "Print the inverse of every transform")
	flagGL         = flag.Bool("gl", false, "Print the column-major float32 layout")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments: the command and its operands.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagPrecision >= 0 {
		cfg.Output.Precision = *flagPrecision
	}
	if *flagConvention != "" {
		cfg.Output.Convention = *flagConvention
	}
	if *flagStrict {
		cfg.Pipeline.Strict = true
	}
	if *flagInverse {
		cfg.Output.ShowInverse = true
	}
	if *flagGL {
		cfg.Output.GLLayout = true
	}
}
