package config

// LoggingConfig controls the structured log sink used by command handlers
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`

	// Adds file:line of the logging call to every record
	IncludeCaller bool `mapstructure:"include_caller"`
}
