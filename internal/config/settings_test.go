package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/ytget/report-summarizer/internal/model"
)

func TestNewSettings_Defaults(t *testing.T) {
	settings := NewSettings()

	if settings.GetAPIURL() != DefaultAPIURL {
		t.Errorf("Expected default API URL %s, got %s", DefaultAPIURL, settings.GetAPIURL())
	}
	if settings.GetRequestTimeout() != 0 {
		t.Errorf("Expected no request timeout by default, got %s", settings.GetRequestTimeout())
	}
	if settings.GetDefaultMethod() != model.MethodExtractive {
		t.Errorf("Expected default method extractive, got %s", settings.GetDefaultMethod())
	}
	if settings.GetDefaultMaxLength() != 150 || settings.GetDefaultMinLength() != 40 {
		t.Errorf("Expected lengths 150/40, got %d/%d", settings.GetDefaultMaxLength(), settings.GetDefaultMinLength())
	}
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}
	if err := settings.Validate(); err != nil {
		t.Errorf("Defaults should validate, got %v", err)
	}
}

func TestAPIURL_TrimsTrailingSlash(t *testing.T) {
	settings := NewSettings()
	settings.SetAPIURL("https://summaries.example.com/api/ ")

	if got := settings.GetAPIURL(); got != "https://summaries.example.com/api" {
		t.Errorf("Expected trimmed URL, got %s", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("SUMMARIZER_API_URL", "http://10.0.0.5:8080/api")
	t.Setenv("SUMMARIZER_LOG_LEVEL", "DEBUG")
	t.Setenv("SUMMARIZER_DEFAULT_MAX_LENGTH", "300")

	settings := NewSettings()

	if settings.GetAPIURL() != "http://10.0.0.5:8080/api" {
		t.Errorf("Expected env API URL, got %s", settings.GetAPIURL())
	}
	if settings.GetLogLevel() != "debug" {
		t.Errorf("Expected log level debug, got %s", settings.GetLogLevel())
	}
	if settings.GetDefaultMaxLength() != 300 {
		t.Errorf("Expected max length 300, got %d", settings.GetDefaultMaxLength())
	}
}

func TestLoad_ConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summarizer.yaml")
	content := "api_url: http://config-host:5000/api\nrequest_timeout: 30s\nlanguage: pt\nlog:\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("api-url", "", "")
	flags.String("downloads-dir", "", "")
	flags.String("language", "", "")
	flags.String("log-level", "", "")
	flags.String("log-format", "", "")
	if err := flags.Parse([]string{"--api-url", "https://flag-host/api"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	settings, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.GetAPIURL() != "https://flag-host/api" {
		t.Errorf("Flag should win over config file, got %s", settings.GetAPIURL())
	}
	if settings.GetRequestTimeout() != 30*time.Second {
		t.Errorf("Expected timeout 30s from config, got %s", settings.GetRequestTimeout())
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected language pt from config, got %s", settings.GetLanguage())
	}
	if settings.GetLogFormat() != "json" {
		t.Errorf("Expected json log format, got %s", settings.GetLogFormat())
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	settings := NewSettings()
	settings.SetAPIURL("ftp://files.example.com")
	settings.v.Set(KeyDefaultMaxLength, 0)
	settings.v.Set(KeyLogFormat, "xml")

	err := settings.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}

	msg := err.Error()
	for _, fragment := range []string{KeyAPIURL, KeyDefaultMaxLength, KeyLogFormat} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("Expected error to mention %s, got: %s", fragment, msg)
		}
	}
}

func TestMinLengthAboveMaxIsAccepted(t *testing.T) {
	settings := NewSettings()
	settings.v.Set(KeyDefaultMinLength, 500)
	settings.v.Set(KeyDefaultMaxLength, 100)

	if err := settings.Validate(); err != nil {
		t.Errorf("min > max is left to the backend, got %v", err)
	}
}

func TestDownloadDirectory(t *testing.T) {
	settings := NewSettings()

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	if got := settings.GetDownloadDirectory(); got != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, got)
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings()

	settings.SetLanguage("ru")
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language 'ru', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	settings := NewSettings()

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
