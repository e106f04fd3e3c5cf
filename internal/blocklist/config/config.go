package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "BLOCKLIST_"

// AppConfig holds the runtime configuration of the blocklist generator.
type AppConfig struct {
	// Env is the runtime environment, either "dev" (colored console output) or "prod" (JSON).
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// NullAddr is the address every blocked domain is mapped to.
	NullAddr string `koanf:"null_addr" validate:"required,null_addr"`

	// Output is the path of the generated blocklist file. It is not validated here;
	// an unusable path is reported by the writer.
	Output string `koanf:"output"`
}

// DEFAULT_APP_CONFIG defines the default application configuration.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:      "dev",
	LogLevel: "info",
	NullAddr: "0.0.0.0",
	Output:   "block_list.pi_hosts",
}

// validNullAddr reports whether the field holds a literal IPv4 or IPv6 address.
func validNullAddr(fl validator.FieldLevel) bool {
	return net.ParseIP(fl.Field().String()) != nil
}

// envLoader loads environment variables with the prefix "BLOCKLIST_".
// Keys are lowercased with the prefix removed; values are trimmed.
// It is a variable so tests can replace it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG into the provided Koanf instance.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// overrideLoader loads explicit overrides, typically from command-line flags.
var overrideLoader = func(k *koanf.Koanf, overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	return k.Load(confmap.Provider(overrides, "."), nil)
}

// registerValidation registers the "null_addr" validation tag.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("null_addr", validNullAddr)
}

// Load builds an AppConfig from defaults, then environment variables, then
// overrides (keys are koanf tags, e.g. "output"), and validates the result.
func Load(overrides map[string]any) (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	err = overrideLoader(k, overrides)
	if err != nil {
		return nil, fmt.Errorf("error loading overrides: %w", err)
	}

	var cfg AppConfig

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
