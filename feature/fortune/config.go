package fortune

// Config holds configuration for fortune selection.
type Config struct {
	// MaxAttempts bounds how many identifiers are drawn per request before giving up.
	// Zero or negative leaves the loop bounded only by the request deadline.
	MaxAttempts int `mapstructure:"max_attempts" default:"1000"`
}
