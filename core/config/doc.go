// Package config provides configuration management for the fortune server.
//
// It utilizes Viper for loading configuration from environment variables, after an
// optional .env file has been applied with godotenv. Variables already present in
// the process environment win over the .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: listen port, response status code, worker pool size, request timeout
//   - Database: entry database location, driver, table, fallback max id
//   - Fortune: selection attempt budget
//   - Storage: S3/MinIO credentials for s3:// database snapshots
//   - Log: logging level and format
//
// Keys are derived from `mapstructure` tags (LOG_LEVEL -> log.level). Keys with an
// `env` tag are read from that exact variable name (RESPONSE_CODE, DATABASE_URL,
// TEAPOT_FORTUNE_PORT). Integer keys may carry a `range:"min,max"` tag.
//
// # Fallbacks
//
// Loading never fails on bad values. Each unset `env` variable and each value that
// cannot be parsed for its type falls back to the `default` tag and is recorded as a
// Notice so the caller can log it once a logger exists. The resolved Config is never
// written back into the process environment.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
