package config

import (
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/ytget/report-summarizer/internal/model"
	"github.com/ytget/report-summarizer/internal/platform"
)

// EnvPrefix is prepended to every environment override, e.g. SUMMARIZER_API_URL
const EnvPrefix = "SUMMARIZER"

// Settings keys
const (
	KeyAPIURL           = "api_url"
	KeyRequestTimeout   = "request_timeout"
	KeyDefaultMethod    = "default_method"
	KeyDefaultMaxLength = "default_max_length"
	KeyDefaultMinLength = "default_min_length"
	KeyDownloadDir      = "downloads_dir"
	KeyLanguage         = "language"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

// Default values
const (
	DefaultAPIURL         = "http://localhost:5000/api"
	DefaultRequestTimeout = time.Duration(0)
	DefaultLanguage       = "system"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Flag names bound by the launcher
var flagKeys = map[string]string{
	"api-url":       KeyAPIURL,
	"downloads-dir": KeyDownloadDir,
	"language":      KeyLanguage,
	"log-level":     KeyLogLevel,
	"log-format":    KeyLogFormat,
}

// Settings manages application configuration for the running session.
// Nothing is written back to disk.
type Settings struct {
	mu sync.RWMutex
	v  *viper.Viper
}

// NewSettings creates settings populated with defaults only
func NewSettings() *Settings {
	v := viper.New()
	v.SetDefault(KeyAPIURL, DefaultAPIURL)
	v.SetDefault(KeyRequestTimeout, DefaultRequestTimeout)
	v.SetDefault(KeyDefaultMethod, string(model.DefaultMethod))
	v.SetDefault(KeyDefaultMaxLength, model.DefaultMaxLength)
	v.SetDefault(KeyDefaultMinLength, model.DefaultMinLength)
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Settings{v: v}
}

// Load builds settings from defaults, an optional config file, a .env file in
// the working directory, the environment and the given flags (highest wins).
func Load(configFile string, flags *pflag.FlagSet) (*Settings, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "load .env")
	}

	s := NewSettings()

	if configFile != "" {
		s.v.SetConfigFile(configFile)
		if err := s.v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configFile)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := s.v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports every invalid setting at once
func (s *Settings) Validate() error {
	var err error

	raw := s.GetAPIURL()
	u, parseErr := url.Parse(raw)
	switch {
	case parseErr != nil:
		err = multierr.Append(err, errors.Wrapf(parseErr, "%s %q", KeyAPIURL, raw))
	case u.Scheme != "http" && u.Scheme != "https":
		err = multierr.Append(err, errors.Errorf("%s must start with http:// or https://, got %q", KeyAPIURL, raw))
	case u.Host == "":
		err = multierr.Append(err, errors.Errorf("%s has no host: %q", KeyAPIURL, raw))
	}

	if s.GetRequestTimeout() < 0 {
		err = multierr.Append(err, errors.Errorf("%s must not be negative", KeyRequestTimeout))
	}
	if s.GetDefaultMaxLength() <= 0 {
		err = multierr.Append(err, errors.Errorf("%s must be positive", KeyDefaultMaxLength))
	}
	if s.GetDefaultMinLength() < 0 {
		err = multierr.Append(err, errors.Errorf("%s must not be negative", KeyDefaultMinLength))
	}

	switch s.GetLogFormat() {
	case "text", "json":
	default:
		err = multierr.Append(err, errors.Errorf("%s must be text or json, got %q", KeyLogFormat, s.GetLogFormat()))
	}

	return err
}

// GetAPIURL returns the backend base URL without a trailing slash
func (s *Settings) GetAPIURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.TrimRight(strings.TrimSpace(s.v.GetString(KeyAPIURL)), "/")
}

// SetAPIURL overrides the backend base URL for this session
func (s *Settings) SetAPIURL(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(KeyAPIURL, raw)
}

// GetRequestTimeout returns the HTTP client timeout; zero means none
func (s *Settings) GetRequestTimeout() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetDuration(KeyRequestTimeout)
}

// GetDefaultMethod returns the method preselected in both forms
func (s *Settings) GetDefaultMethod() model.Method {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.ParseMethod(s.v.GetString(KeyDefaultMethod))
}

// GetDefaultMaxLength returns the initial max length shown in the forms
func (s *Settings) GetDefaultMaxLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetInt(KeyDefaultMaxLength)
}

// GetDefaultMinLength returns the initial min length shown in the forms
func (s *Settings) GetDefaultMinLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetInt(KeyDefaultMinLength)
}

// GetDownloadDirectory returns the directory saved summaries go to
func (s *Settings) GetDownloadDirectory() string {
	s.mu.RLock()
	dir := s.v.GetString(KeyDownloadDir)
	s.mu.RUnlock()

	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = os.TempDir()
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lang := s.v.GetString(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(KeyLanguage, lang)
}

// GetLogLevel returns the logrus level name
func (s *Settings) GetLogLevel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.ToLower(s.v.GetString(KeyLogLevel))
}

// GetLogFormat returns text or json
func (s *Settings) GetLogFormat() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.ToLower(s.v.GetString(KeyLogFormat))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
