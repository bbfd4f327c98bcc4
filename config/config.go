package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Transcription engine selection.
const (
	EngineCommand = "command"
	EngineWhisper = "whisper"
)

// DefaultRecorder is the capture binary. sox's rec finalizes the WAV
// header on SIGTERM, which the stop sequence relies on.
const DefaultRecorder = "rec"

// DefaultSilenceRMS is the RMS amplitude below which a 16-bit recording
// is treated as silence and never sent to the transcription engine.
const DefaultSilenceRMS = 200

type Config struct {
	StateDir      string // holds the capture session record
	RecordingPath string // single-slot WAV artifact
	HistoryPath   string // append-only transcript log
	LogDir        string // rotating diagnostic log, empty disables the file

	Recorder   string // capture binary, resolved via PATH
	SampleRate int
	Channels   int
	BitDepth   int

	Engine            string   // EngineCommand or EngineWhisper
	TranscribeCommand []string // argv, artifact path appended as last arg
	TranscribeTimeout time.Duration
	WhisperURL        string
	WhisperModel      string
	WhisperLanguage   string

	SilenceRMS float64
	StopGrace  time.Duration // bounded wait for the artifact to finalize
	Paste      bool          // synthetic paste keystroke after clipboard write
}

type fileConfig struct {
	StateDir      string `toml:"state_dir"`
	RecordingPath string `toml:"recording_path"`
	HistoryPath   string `toml:"history_path"`
	LogDir        string `toml:"log_dir"`

	Recorder   string `toml:"recorder"`
	SampleRate int    `toml:"sample_rate"`
	Channels   int    `toml:"channels"`
	BitDepth   int    `toml:"bit_depth"`

	Engine               string   `toml:"engine"`
	TranscribeCommand    []string `toml:"transcribe_command"`
	TranscribeTimeoutSec int      `toml:"transcribe_timeout_secs"`
	WhisperURL           string   `toml:"whisper_url"`
	WhisperModel         string   `toml:"whisper_model"`
	WhisperLanguage      string   `toml:"whisper_language"`

	SilenceRMS   float64 `toml:"silence_rms"`
	StopGraceMS  int     `toml:"stop_grace_ms"`
	DisablePaste bool    `toml:"disable_paste"`
}

func Load() (*Config, error) {
	cfg := &Config{
		StateDir:          defaultStateDir(),
		RecordingPath:     filepath.Join(os.TempDir(), "dictate_recording.wav"),
		HistoryPath:       defaultHistoryPath(),
		LogDir:            defaultStateDir(),
		Recorder:          DefaultRecorder,
		SampleRate:        16000,
		Channels:          1,
		BitDepth:          16,
		Engine:            EngineCommand,
		TranscribeTimeout: 120 * time.Second,
		SilenceRMS:        DefaultSilenceRMS,
		StopGrace:         2 * time.Second,
		Paste:             true,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			applyFile(cfg, &fc)
		}
	}

	applyEnvOverrides(cfg)

	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFile(cfg *Config, fc *fileConfig) {
	if fc.StateDir != "" {
		cfg.StateDir = expandTilde(fc.StateDir)
	}
	if fc.RecordingPath != "" {
		cfg.RecordingPath = expandTilde(fc.RecordingPath)
	}
	if fc.HistoryPath != "" {
		cfg.HistoryPath = expandTilde(fc.HistoryPath)
	}
	if fc.LogDir != "" {
		cfg.LogDir = expandTilde(fc.LogDir)
	}
	if fc.Recorder != "" {
		cfg.Recorder = fc.Recorder
	}
	if fc.SampleRate > 0 {
		cfg.SampleRate = fc.SampleRate
	}
	if fc.Channels > 0 {
		cfg.Channels = fc.Channels
	}
	if fc.BitDepth > 0 {
		cfg.BitDepth = fc.BitDepth
	}
	if fc.Engine != "" {
		cfg.Engine = fc.Engine
	}
	if len(fc.TranscribeCommand) > 0 {
		cfg.TranscribeCommand = fc.TranscribeCommand
	}
	if fc.TranscribeTimeoutSec > 0 {
		cfg.TranscribeTimeout = time.Duration(fc.TranscribeTimeoutSec) * time.Second
	}
	if fc.WhisperURL != "" {
		cfg.WhisperURL = fc.WhisperURL
	}
	if fc.WhisperModel != "" {
		cfg.WhisperModel = fc.WhisperModel
	}
	if fc.WhisperLanguage != "" {
		cfg.WhisperLanguage = fc.WhisperLanguage
	}
	if fc.SilenceRMS > 0 {
		cfg.SilenceRMS = fc.SilenceRMS
	}
	if fc.StopGraceMS > 0 {
		cfg.StopGrace = time.Duration(fc.StopGraceMS) * time.Millisecond
	}
	if fc.DisablePaste {
		cfg.Paste = false
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DICTATE_STATE_DIR"); v != "" {
		cfg.StateDir = expandTilde(v)
	}
	if v := os.Getenv("DICTATE_RECORDING_PATH"); v != "" {
		cfg.RecordingPath = expandTilde(v)
	}
	if v := os.Getenv("DICTATE_HISTORY_PATH"); v != "" {
		cfg.HistoryPath = expandTilde(v)
	}
	if v := os.Getenv("DICTATE_RECORDER"); v != "" {
		cfg.Recorder = v
	}
	if v := os.Getenv("DICTATE_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv("DICTATE_TRANSCRIBE_COMMAND"); v != "" {
		cfg.TranscribeCommand = strings.Fields(v)
	}
	if v := os.Getenv("DICTATE_WHISPER_URL"); v != "" {
		cfg.WhisperURL = v
	}
	if v := os.Getenv("DICTATE_SILENCE_RMS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SilenceRMS = f
		}
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "dictate")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "dictate")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultStateDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "dictate")
	}
	return filepath.Join(os.TempDir(), "dictate")
}

func defaultHistoryPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".dictate_history.log")
	}
	return filepath.Join(os.TempDir(), "dictate_history.log")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
