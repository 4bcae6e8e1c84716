// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/specialistvlad/jsdmbrs/internal/semantic"
)

// EnvPrefix is the prefix of environment overrides. JSDMBRS_LOG_LEVEL sets
// log.level and JSDMBRS_PROJECT_BUILD_TOOL sets project.build_tool.
const EnvPrefix = "JSDMBRS_"

// Config is the merged application configuration.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Project ProjectConfig `koanf:"project"`
	Server  ServerConfig  `koanf:"server"`
	Export  ExportConfig  `koanf:"export"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// ProjectConfig describes the target project of the generated backend.
type ProjectConfig struct {
	Name           string `koanf:"name"`
	BuildTool      string `koanf:"build_tool" validate:"omitempty,oneof=maven gradle"`
	PackageTree    string `koanf:"package_tree"`
	AppFileName    string `koanf:"app_file_name"`
	ExistingDriver string `koanf:"existing_driver"`
}

// ServerConfig configures serve mode.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=0,max=65535"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// ExportConfig selects the default export encoding.
type ExportConfig struct {
	Format string `koanf:"format" validate:"oneof=json yaml hcl"`
}

// Addr is the listen address of serve mode.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SemanticOptions maps the project section onto model build options.
func (c *Config) SemanticOptions() semantic.Options {
	return semantic.Options{Project: semantic.Project{
		BuildTool:      c.Project.BuildTool,
		Name:           c.Project.Name,
		PackageTree:    c.Project.PackageTree,
		AppFileName:    c.Project.AppFileName,
		ExistingDriver: c.Project.ExistingDriver,
	}}
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":               "info",
		"log.format":              "text",
		"server.host":             "",
		"server.port":             8080,
		"server.shutdown_timeout": "5s",
		"export.format":           "json",
	}
}

// Loader describes where configuration comes from.
type Loader struct {
	// File is an optional YAML file. A missing file is an error.
	File string
	// Data is optional YAML content, applied after File.
	Data []byte
	// Environ returns the environment; nil means os.Environ.
	Environ func() []string
}

// Load reads defaults, the YAML file at path (if not empty) and the process
// environment.
func Load(path string) (*Config, error) {
	return Loader{File: path}.Load()
}

// Load merges every source and validates the result.
func (l Loader) Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if l.File != "" {
		if err := k.Load(file.Provider(l.File), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", l.File, err)
		}
	}

	if len(l.Data) > 0 {
		if err := k.Load(rawbytes.Provider(l.Data), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config data: %w", err)
		}
	}

	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
		EnvironFunc:   environ,
	}
	if err := k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// envKey maps JSDMBRS_SECTION_SOME_KEY to section.some_key.
func envKey(k, v string) (string, any) {
	k = strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
	section, rest, ok := strings.Cut(k, "_")
	if !ok {
		return k, v
	}
	return section + "." + rest, v
}

var validate = validator.New()

// Validate checks every field constraint. Log values are matched in lower
// case, so they are normalised first.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	c.Export.Format = strings.ToLower(c.Export.Format)

	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		msgs = append(msgs, msg)
	}
	return errors.New(strings.Join(msgs, "; "))
}
