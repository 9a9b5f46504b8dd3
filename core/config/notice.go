package config

import "fmt"

// NoticeKind classifies a fallback taken while resolving configuration.
type NoticeKind string

const (
	// NoticeNoEnvFile means no .env file was found; this is not an error.
	NoticeNoEnvFile NoticeKind = "no_env_file"
	// NoticeBadEnvFile means a .env file exists but could not be parsed.
	NoticeBadEnvFile NoticeKind = "bad_env_file"
	// NoticeMissing means a variable was not set and its default is used.
	NoticeMissing NoticeKind = "missing"
	// NoticeInvalid means a variable was set to a value that could not be used.
	NoticeInvalid NoticeKind = "invalid"
)

// Notice records a single configuration fallback.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Key     string     `json:"key,omitempty"`
	Env     string     `json:"env,omitempty"`
	Raw     string     `json:"raw,omitempty"`
	Default string     `json:"default,omitempty"`
	Err     string     `json:"error,omitempty"`
}

// IsWarning reports whether the notice should be surfaced at warn level.
func (n Notice) IsWarning() bool {
	return n.Kind == NoticeInvalid || n.Kind == NoticeBadEnvFile
}

// Message renders the notice as a human readable sentence.
func (n Notice) Message() string {
	switch n.Kind {
	case NoticeNoEnvFile:
		return "No env file found, continuing."
	case NoticeBadEnvFile:
		return fmt.Sprintf("Env file %q could not be parsed, continuing: %s", n.Raw, n.Err)
	case NoticeMissing:
		return fmt.Sprintf("%s env variable not set, using default %q.", n.Env, n.Default)
	case NoticeInvalid:
		return fmt.Sprintf("%s %q is not a valid value. Using default %q.", n.Env, n.Raw, n.Default)
	default:
		return string(n.Kind)
	}
}
