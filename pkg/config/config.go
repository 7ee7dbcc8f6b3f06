// Package config loads client settings from a TOML file and FEDPRO_*
// environment variables.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sessamekesh/fedpro-client/pkg/client"
	"github.com/sessamekesh/fedpro-client/pkg/session"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const EnvPrefix = "FEDPRO_"

type Config struct {
	// Address is the compact "<serverAddress>;<protocolSettings>;<rtiAddress>"
	// designator, applied on top of Settings at connect time.
	Address  string
	Settings session.Settings

	RTI           client.RTIConfiguration
	CallbackModel client.CallbackModel
	Credentials   *client.Credentials

	LogLevel       zapcore.Level
	LogDevelopment bool
}

func Default() Config {
	return Config{
		Settings:      session.DefaultSettings(),
		CallbackModel: client.CallbackModel_Evoked,
		LogLevel:      zapcore.InfoLevel,
	}
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type fileConfig struct {
	Address string `toml:"address"`

	Server struct {
		Protocol        string   `toml:"protocol"`
		Host            string   `toml:"host"`
		Port            int      `toml:"port"`
		Path            string   `toml:"path"`
		ConnectTimeout  duration `toml:"connect_timeout"`
		MaxPendingCalls int      `toml:"max_pending_calls"`
	} `toml:"server"`

	RTI struct {
		ConfigurationName  string `toml:"configuration_name"`
		Address            string `toml:"address"`
		AdditionalSettings string `toml:"additional_settings"`
	} `toml:"rti"`

	Callbacks struct {
		Model string `toml:"model"`
	} `toml:"callbacks"`

	Credentials struct {
		Type string `toml:"type"`
		Data string `toml:"data"`
	} `toml:"credentials"`

	Log struct {
		Level       string `toml:"level"`
		Development bool   `toml:"development"`
	} `toml:"log"`
}

// Load reads path on top of Default. Keys missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load client config: %w", err)
	}

	cfg := Default()
	if err := cfg.merge(raw, meta); err != nil {
		return Config{}, fmt.Errorf("load client config: %w", err)
	}
	return cfg, nil
}

// Parse is Load for TOML that is already in memory.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse client config: %w", err)
	}

	cfg := Default()
	if err := cfg.merge(raw, meta); err != nil {
		return Config{}, fmt.Errorf("parse client config: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) merge(raw fileConfig, meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("address") {
		cfg.Address = strings.TrimSpace(raw.Address)
	}

	if meta.IsDefined("server", "protocol") {
		cfg.Settings.Protocol = strings.ToLower(strings.TrimSpace(raw.Server.Protocol))
	}
	if meta.IsDefined("server", "host") {
		cfg.Settings.Host = strings.TrimSpace(raw.Server.Host)
	}
	if meta.IsDefined("server", "port") {
		cfg.Settings.Port = raw.Server.Port
	}
	if meta.IsDefined("server", "path") {
		cfg.Settings.Path = strings.TrimSpace(raw.Server.Path)
	}
	if meta.IsDefined("server", "connect_timeout") {
		cfg.Settings.ConnectTimeout = raw.Server.ConnectTimeout.Duration
	}
	if meta.IsDefined("server", "max_pending_calls") {
		cfg.Settings.MaxPendingCalls = raw.Server.MaxPendingCalls
	}

	if meta.IsDefined("rti", "configuration_name") {
		cfg.RTI.ConfigurationName = strings.TrimSpace(raw.RTI.ConfigurationName)
	}
	if meta.IsDefined("rti", "address") {
		cfg.RTI.RTIAddress = strings.TrimSpace(raw.RTI.Address)
	}
	if meta.IsDefined("rti", "additional_settings") {
		cfg.RTI.AdditionalSettings = raw.RTI.AdditionalSettings
	}

	if meta.IsDefined("callbacks", "model") {
		model, err := ParseCallbackModel(raw.Callbacks.Model)
		if err != nil {
			return err
		}
		cfg.CallbackModel = model
	}

	if meta.IsDefined("credentials", "type") {
		cfg.Credentials = &client.Credentials{
			Type: strings.TrimSpace(raw.Credentials.Type),
			Data: []byte(raw.Credentials.Data),
		}
	}

	if meta.IsDefined("log", "level") {
		level, err := zapcore.ParseLevel(strings.TrimSpace(raw.Log.Level))
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	if meta.IsDefined("log", "development") {
		cfg.LogDevelopment = raw.Log.Development
	}

	return nil
}

// ApplyEnv overrides cfg with FEDPRO_* variables. lookup is usually
// os.LookupEnv.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	var errs error

	if v, ok := get("ADDRESS"); ok {
		cfg.Address = v
	}
	if v, ok := get("PROTOCOL"); ok {
		cfg.Settings.Protocol = strings.ToLower(v)
	}
	if v, ok := get("HOST"); ok {
		cfg.Settings.Host = v
	}
	if v, ok := get("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%sPORT: %w", EnvPrefix, err))
		} else {
			cfg.Settings.Port = port
		}
	}
	if v, ok := get("CONNECT_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%sCONNECT_TIMEOUT: %w", EnvPrefix, err))
		} else {
			cfg.Settings.ConnectTimeout = d
		}
	}
	if v, ok := get("RTI_ADDRESS"); ok {
		cfg.RTI.RTIAddress = v
	}
	if v, ok := get("CONFIGURATION_NAME"); ok {
		cfg.RTI.ConfigurationName = v
	}
	if v, ok := get("CALLBACK_MODEL"); ok {
		model, err := ParseCallbackModel(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%sCALLBACK_MODEL: %w", EnvPrefix, err))
		} else {
			cfg.CallbackModel = model
		}
	}
	if v, ok := get("CREDENTIALS_TYPE"); ok {
		data, _ := lookup(EnvPrefix + "CREDENTIALS_DATA")
		cfg.Credentials = &client.Credentials{Type: v, Data: []byte(data)}
	}
	if v, ok := get("LOG_LEVEL"); ok {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%sLOG_LEVEL: %w", EnvPrefix, err))
		} else {
			cfg.LogLevel = level
		}
	}

	return errs
}

// Validate reports every problem at once.
func (cfg *Config) Validate() error {
	var errs error

	switch cfg.Settings.Protocol {
	case session.Protocol_Websocket, session.Protocol_WebsocketSecure:
	default:
		errs = multierr.Append(errs, fmt.Errorf("unsupported protocol %q", cfg.Settings.Protocol))
	}
	if cfg.Settings.Host == "" {
		errs = multierr.Append(errs, fmt.Errorf("server host is empty"))
	}
	if cfg.Settings.Port <= 0 || cfg.Settings.Port > 65535 {
		errs = multierr.Append(errs, fmt.Errorf("server port %d out of range", cfg.Settings.Port))
	}
	if cfg.Settings.ConnectTimeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("connect timeout must be positive"))
	}
	if cfg.CallbackModel != client.CallbackModel_Immediate && cfg.CallbackModel != client.CallbackModel_Evoked {
		errs = multierr.Append(errs, fmt.Errorf("unsupported callback model %s", cfg.CallbackModel))
	}
	if cfg.Credentials != nil && cfg.Credentials.Type == "" {
		errs = multierr.Append(errs, fmt.Errorf("credentials need a type"))
	}

	if address, err := session.ParseAddress(cfg.Address); err != nil {
		errs = multierr.Append(errs, err)
	} else if _, err := address.Apply(cfg.Settings); err != nil {
		errs = multierr.Append(errs, err)
	}

	return errs
}

// ParseCallbackModel accepts "immediate", "evoked" and their HLA_ forms,
// in any case.
func ParseCallbackModel(s string) (client.CallbackModel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IMMEDIATE", "HLA_IMMEDIATE":
		return client.CallbackModel_Immediate, nil
	case "EVOKED", "HLA_EVOKED":
		return client.CallbackModel_Evoked, nil
	}
	return 0, fmt.Errorf("unknown callback model %q", s)
}

func (cfg *Config) ClientParams(logger *zap.Logger) client.ClientParams {
	return client.ClientParams{
		Address:  cfg.Address,
		Settings: cfg.Settings,
		Logger:   logger,
	}
}

// Logger builds the process logger, production encoding unless
// LogDevelopment is set.
func (cfg *Config) Logger() (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.LogDevelopment {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zapCfg.Build()
}
