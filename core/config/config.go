package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"teapot-fortune/core/database"
	"teapot-fortune/core/logger"
	"teapot-fortune/core/server"
	"teapot-fortune/core/storage"
	"teapot-fortune/feature/fortune"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the entry database.
	Database database.Config `mapstructure:"database"`
	// Fortune holds configuration for fortune selection.
	Fortune fortune.Config `mapstructure:"fortune"`
	// Storage holds configuration for object storage snapshots (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`

	// Notices lists every fallback taken while resolving the configuration.
	Notices []Notice `mapstructure:"-" json:"notices,omitempty"`
}

// field describes one leaf configuration key discovered from struct tags.
type field struct {
	key      string
	env      string
	def      string
	kind     reflect.Kind
	min, max *int64
}

// LoadConfig loads configuration from environment variables and a .env file in path.
// Missing or malformed values never fail loading, they fall back to their defaults
// and are recorded in Config.Notices.
func LoadConfig(path string) (*Config, error) {
	var notices []Notice

	envPath := filepath.Join(path, ".env")
	if err := godotenv.Load(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			notices = append(notices, Notice{Kind: NoticeNoEnvFile, Raw: envPath})
		} else {
			notices = append(notices, Notice{Kind: NoticeBadEnvFile, Raw: envPath, Err: err.Error()})
		}
	}

	v := viper.New()

	var fields []field
	collectFields(Config{}, "", &fields)

	for _, f := range fields {
		if f.env == "" {
			// Nested keys map to SECTION_KEY (e.g. log.level -> LOG_LEVEL)
			if err := v.BindEnv(f.key, envName(f)); err != nil {
				return nil, err
			}
			v.SetDefault(f.key, f.def)
			if raw := v.GetString(f.key); !f.valid(raw) {
				notices = append(notices, Notice{Kind: NoticeInvalid, Key: f.key, Env: envName(f), Raw: raw, Default: f.def})
				v.Set(f.key, f.def)
			} else if f.numeric() {
				v.Set(f.key, strings.TrimSpace(raw))
			}
			continue
		}

		// Keys with an explicit variable name are read from that variable only
		raw, ok := os.LookupEnv(f.env)
		if !ok || raw == "" {
			notices = append(notices, Notice{Kind: NoticeMissing, Key: f.key, Env: f.env, Default: f.def})
			v.Set(f.key, f.def)
			continue
		}
		if !f.valid(raw) {
			notices = append(notices, Notice{Kind: NoticeInvalid, Key: f.key, Env: f.env, Raw: raw, Default: f.def})
			v.Set(f.key, f.def)
		} else if f.numeric() {
			v.Set(f.key, strings.TrimSpace(raw))
		} else {
			v.Set(f.key, raw)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Notices = notices

	return &config, nil
}

// collectFields uses reflection to iterate over the struct and gather every leaf key
// with its 'default', 'env' and 'range' tags.
func collectFields(iface any, prefix string, out *[]field) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if sf.Type.Kind() == reflect.Struct {
			collectFields(reflect.New(sf.Type).Elem().Interface(), key, out)
			continue
		}

		f := field{
			key:  key,
			env:  sf.Tag.Get("env"),
			def:  sf.Tag.Get("default"),
			kind: sf.Type.Kind(),
		}
		if r := sf.Tag.Get("range"); r != "" {
			lo, hi, ok := strings.Cut(r, ",")
			if ok {
				if n, err := strconv.ParseInt(lo, 10, 64); err == nil {
					f.min = &n
				}
				if n, err := strconv.ParseInt(hi, 10, 64); err == nil {
					f.max = &n
				}
			}
		}
		*out = append(*out, f)
	}
}

// numeric reports whether the field is decoded from a trimmed literal rather than free text.
func (f field) numeric() bool {
	switch f.kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Bool:
		return true
	}
	return false
}

// valid reports whether raw can be decoded into the field's kind and fits its range.
func (f field) valid(raw string) bool {
	raw = strings.TrimSpace(raw)
	switch f.kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return false
		}
		if f.min != nil && n < *f.min {
			return false
		}
		if f.max != nil && n > *f.max {
			return false
		}
		return true
	case reflect.Bool:
		_, err := strconv.ParseBool(raw)
		return err == nil
	default:
		return true
	}
}

func envName(f field) string {
	if f.env != "" {
		return f.env
	}
	return strings.ToUpper(strings.ReplaceAll(f.key, ".", "_"))
}

// Redacted returns a copy of the configuration with credentials masked.
func (c Config) Redacted() Config {
	out := c
	if out.Storage.SecretKey != "" {
		out.Storage.SecretKey = "***"
	}
	if out.Database.Driver == database.DriverMySQL {
		if user, rest, ok := strings.Cut(out.Database.URL, "@"); ok {
			if name, _, hasPass := strings.Cut(user, ":"); hasPass {
				out.Database.URL = name + ":***@" + rest
			}
		}
	}
	return out
}
