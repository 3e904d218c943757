// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package config

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "SDKGEN"
	ConfigName = "sdkgen"
)

// Ключи конфигурации.
const (
	KeyInput            = "input"
	KeyOut              = "out"
	KeyDocs             = "docs"
	KeyProjectRoot      = "project-root"
	KeyAllowedModules   = "allowed-modules"
	KeyEndpoints        = "endpoints"
	KeySkipFiles        = "skip-files"
	KeyVoidTypes        = "void-types"
	KeyNamePattern      = "name-format.pattern"
	KeyNameReplace      = "name-format.replace"
	KeyWidenEnumMembers = "widen-enum-members"
	KeyLogLevel         = "log-level"
	KeyLogFormat        = "log-format"
	KeyTelemetryAddr    = "telemetry.endpoint"
	KeyTelemetryInsec   = "telemetry.insecure"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Input            string     `mapstructure:"input"`
	Out              string     `mapstructure:"out"`
	Docs             string     `mapstructure:"docs"`
	ProjectRoot      string     `mapstructure:"project-root"`
	AllowedModules   []string   `mapstructure:"allowed-modules"`
	Endpoints        []string   `mapstructure:"endpoints"`
	SkipFiles        []string   `mapstructure:"skip-files"`
	VoidTypes        []string   `mapstructure:"void-types"`
	NameFormat       NameFormat `mapstructure:"name-format"`
	WidenEnumMembers bool       `mapstructure:"widen-enum-members"`
	LogLevel         string     `mapstructure:"log-level"`
	LogFormat        string     `mapstructure:"log-format"`
	Telemetry        Telemetry  `mapstructure:"telemetry"`
}

// NameFormat преобразует имя класса эндпоинта в ключ группы.
type NameFormat struct {
	Pattern string `mapstructure:"pattern"`
	Replace string `mapstructure:"replace"`
}

type Telemetry struct {
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

func SetDefaults(v *viper.Viper) {

	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyOut, "sdk.gen.ts")
	v.SetDefault(KeyDocs, "")
	v.SetDefault(KeyProjectRoot, "")
	v.SetDefault(KeyAllowedModules, []string{})
	v.SetDefault(KeyEndpoints, []string{})
	v.SetDefault(KeySkipFiles, []string{"*.gen.ts"})
	v.SetDefault(KeyVoidTypes, []string{})
	v.SetDefault(KeyNamePattern, "")
	v.SetDefault(KeyNameReplace, "")
	v.SetDefault(KeyWidenEnumMembers, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyTelemetryAddr, "")
	v.SetDefault(KeyTelemetryInsec, false)
}

// New экземпляр viper с умолчаниями и переменными окружения SDKGEN_*.
func New() *viper.Viper {

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load читает файл конфигурации (явный путь или sdkgen.* в каталоге searchDir) и разбирает его.
// Отсутствие файла при поиске по умолчанию не является ошибкой.
func Load(v *viper.Viper, file string, searchDir string) (cfg *Config, err error) {

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(searchDir)
	}
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return FromViper(v)
}

func FromViper(v *viper.Viper) (cfg *Config, err error) {

	cfg = &Config{}
	if err = v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() (err error) {

	if _, err = regexp.Compile(c.NameFormat.Pattern); err != nil {
		return fmt.Errorf("%w: name-format.pattern: %w", ErrInvalidConfig, err)
	}
	for _, group := range []struct {
		key      string
		patterns []string
	}{
		{KeyEndpoints, c.Endpoints},
		{KeySkipFiles, c.SkipFiles},
	} {
		for _, pattern := range group.patterns {
			if _, err = path.Match(pattern, ""); err != nil {
				return fmt.Errorf("%w: %s: %q: %w", ErrInvalidConfig, group.key, pattern, err)
			}
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log-format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// EndpointFilter отбирает классы по шаблонам endpoints; пустой список пропускает все.
func (c *Config) EndpointFilter() func(className string) bool {

	if len(c.Endpoints) == 0 {
		return nil
	}
	patterns := c.Endpoints
	return func(className string) bool {
		return matchAny(patterns, className)
	}
}

// SkipFile сопоставляет шаблоны skip-files с полным путём и с именем файла.
func (c *Config) SkipFile() func(file string) bool {

	if len(c.SkipFiles) == 0 {
		return nil
	}
	patterns := c.SkipFiles
	return func(file string) bool {
		file = strings.ReplaceAll(file, "\\", "/")
		return matchAny(patterns, file) || matchAny(patterns, path.Base(file))
	}
}

// NameFormatter функция именования групп; nil, если шаблон не задан.
func (c *Config) NameFormatter() func(className string) string {

	if c.NameFormat.Pattern == "" {
		return nil
	}
	re := regexp.MustCompile(c.NameFormat.Pattern)
	replace := c.NameFormat.Replace
	return func(className string) string {
		return re.ReplaceAllString(className, replace)
	}
}

func matchAny(patterns []string, value string) bool {

	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, value); ok {
			return true
		}
	}
	return false
}
