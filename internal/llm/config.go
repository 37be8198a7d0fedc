package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskNotes      TaskType = "notes"
	TaskAssessment TaskType = "assessment"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	Endpoint  string
	Model     string
	APIKey    string
	LogCalls  bool
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The API key has no
// default; it must come from the environment.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://generativelanguage.googleapis.com",
		Model:     "gemini-2.0-flash",
		LogCalls:  false,
		TimeoutMs: 60000,
		Tasks: map[TaskType]TaskConfig{
			TaskNotes:      {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 90000},
			TaskAssessment: {Temperature: 0.3, MaxTokens: 8192, TimeoutMs: 120000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NOTEWRIGHT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("NOTEWRIGHT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("NOTEWRIGHT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("NOTEWRIGHT_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("NOTEWRIGHT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskNotes, "NOTEWRIGHT_NOTES_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskAssessment, "NOTEWRIGHT_ASSESSMENT_TIMEOUT_MS")

	return cfg
}

// Configured reports whether a credential is present. Callers check this
// before building prompts so a missing key fails fast with no request sent.
func (c Config) Configured() bool {
	return c.APIKey != ""
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
