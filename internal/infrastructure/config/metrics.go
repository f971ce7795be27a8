package config

// MetricsConfig controls turn and command metrics. The CLI exits after each
// command, so the registry is written to a node_exporter textfile instead of
// being served.
type MetricsConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	TextfilePath string `mapstructure:"textfile_path" validate:"required_if=Enabled true"`
}
