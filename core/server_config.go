/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	defaultConfigFile = "testbed.yaml"
	configFileFlag    = "configfile"
	// envPrefix is the prefix of environment variables holding config, e.g. TESTBED_HTTP_ADDRESS for http.address.
	envPrefix                = "TESTBED_"
	keyDelimiter             = "."
	configValueListSeparator = ","
)

// ServerConfig has global server settings.
type ServerConfig struct {
	Verbosity    string     `koanf:"verbosity"`
	LoggerFormat string     `koanf:"loggerformat"`
	Strictmode   bool       `koanf:"strictmode"`
	HTTP         HTTPConfig `koanf:"http"`
	configMap    *koanf.Koanf
}

// HTTPConfig contains configuration for the HTTP interface.
type HTTPConfig struct {
	// Address holds the interface address the HTTP service must be bound to, in the format of `interface:port` (e.g. localhost:8080).
	Address string `koanf:"address"`
	// MaxBodySize limits the size of request bodies, e.g. "10M". Logs exceeding it are rejected.
	MaxBodySize string `koanf:"maxbodysize"`
	// CORS holds the configuration for Cross Origin Resource Sharing.
	CORS HTTPCORSConfig `koanf:"cors"`
	// RateLimit limits the number of requests per client.
	RateLimit HTTPRateLimitConfig `koanf:"ratelimit"`
}

// HTTPCORSConfig contains configuration for Cross Origin Resource Sharing.
type HTTPCORSConfig struct {
	// Origin specifies the AllowOrigin option. If no origins are given CORS is considered to be disabled.
	Origin []string `koanf:"origin"`
}

// Enabled returns whether CORS is enabled according to this configuration.
func (cors HTTPCORSConfig) Enabled() bool {
	return len(cors.Origin) > 0
}

// NewServerConfig creates an initialized empty server config
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		configMap: koanf.New(keyDelimiter),
	}
}

// FlagSet returns the flags of the server config.
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flagSet.String(configFileFlag, defaultConfigFile, "Testbed config file")
	flagSet.String("verbosity", "info", "Log level (trace, debug, info, warn, error)")
	flagSet.String("loggerformat", "text", "Log format (text, json)")
	flagSet.Bool("strictmode", true, "When set, insecure settings are forbidden.")
	flagSet.String("http.address", ":8080", "Address and port the server will be listening to")
	flagSet.String("http.maxbodysize", "10M", "Maximum size of request bodies, e.g. 512K or 10M. Empty means unlimited.")
	flagSet.Float64("http.ratelimit.requests", 0, "Number of requests per second a client may make. 0 disables rate limiting.")
	flagSet.Int("http.ratelimit.burst", 10, "Number of requests a client may make at once when rate limiting is enabled.")
	flagSet.StringSlice("http.cors.origin", nil, "When set, enables CORS from the specified origins on the HTTP interface.")
	return flagSet
}

// Load loads the config from (in order of precedence) the command line flags, environment variables and the config file.
// Flags that aren't set explicitly provide the defaults.
func (ngc *ServerConfig) Load(flags *pflag.FlagSet) error {
	if err := ngc.loadConfigMap(flags); err != nil {
		return err
	}
	if err := ngc.configMap.UnmarshalWithConf("", ngc, koanf.UnmarshalConf{}); err != nil {
		return err
	}
	return ngc.configureLogger()
}

func (ngc *ServerConfig) loadConfigMap(flags *pflag.FlagSet) error {
	// Defaults first, so the config file and environment can override them
	if err := ngc.configMap.Load(posflag.Provider(flags, keyDelimiter, ngc.configMap), nil); err != nil {
		return err
	}
	if configFile := resolveConfigFilePath(flags); configFile != "" {
		err := ngc.configMap.Load(file.Provider(configFile), yaml.Parser())
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("unable to load config file %s: %w", configFile, err)
		}
	}
	if err := ngc.configMap.Load(envProvider(), nil); err != nil {
		return err
	}
	// posflag only overrides keys that already exist with flags that were explicitly set
	return ngc.configMap.Load(posflag.Provider(flags, keyDelimiter, ngc.configMap), nil)
}

func (ngc *ServerConfig) configureLogger() error {
	level, err := logrus.ParseLevel(ngc.Verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	switch ngc.LoggerFormat {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid formatter: '%s'", ngc.LoggerFormat)
	}
	return nil
}

// envProvider maps TESTBED_A_B to key a.b. Values containing a comma become lists.
func envProvider() *env.Env {
	return env.ProviderWithValue(envPrefix, keyDelimiter, func(rawKey string, rawValue string) (string, interface{}) {
		key := envKey(rawKey)
		if !strings.Contains(rawValue, configValueListSeparator) {
			return key, rawValue
		}
		values := strings.Split(rawValue, configValueListSeparator)
		for i, value := range values {
			values[i] = strings.TrimSpace(value)
		}
		return key, values
	})
}

func envKey(rawKey string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(rawKey, envPrefix)), "_", keyDelimiter)
}

// resolveConfigFilePath resolves the path of the config file from the command line flag,
// the TESTBED_CONFIGFILE environment variable or the default, in that order.
func resolveConfigFilePath(flags *pflag.FlagSet) string {
	if flag := flags.Lookup(configFileFlag); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	if value, ok := os.LookupEnv(envPrefix + strings.ToUpper(configFileFlag)); ok {
		return value
	}
	if flag := flags.Lookup(configFileFlag); flag != nil {
		return flag.Value.String()
	}
	return ""
}

// PrintConfig returns the loaded config, one key per line.
func (ngc *ServerConfig) PrintConfig() string {
	return ngc.configMap.Sprint()
}

// InjectIntoEngine unmarshals the config under the engine's (lowercase) name into the engine's config struct.
func (ngc *ServerConfig) InjectIntoEngine(e Injectable) error {
	return ngc.configMap.UnmarshalWithConf(strings.ToLower(e.Name()), e.Config(), koanf.UnmarshalConf{})
}
