package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen on all interfaces.
	Port int `mapstructure:"port" env:"TEAPOT_FORTUNE_PORT" default:"6757" range:"0,65535"`
	// ResponseCode is the status code attached to every fortune response.
	ResponseCode int `mapstructure:"response_code" env:"RESPONSE_CODE" default:"418" range:"100,599"`
	// Workers bounds how many requests are handled concurrently.
	Workers int `mapstructure:"workers" default:"5"`
	// RequestTimeoutSeconds bounds how long a single request may spend selecting a fortune.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"10"`
}

// RequestTimeout returns the per-request selection deadline.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// WorkerCount returns the size of the request worker pool.
func (c Config) WorkerCount() int {
	if c.Workers <= 0 {
		return 5
	}
	return c.Workers
}
