package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// Config ...
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	MySQL       MySQLConfig       `mapstructure:"mysql"`
	Log         LogConfig         `mapstructure:"log"`
	Jaeger      JaegerConfig      `mapstructure:"jaeger"`
	Certificate CertificateConfig `mapstructure:"certificate"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ListenConfig `mapstructure:"http"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String ...
func (c ListenConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ListenString ...
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// CertificateConfig ...
type CertificateConfig struct {
	// ArtifactDir is where rendered certificate documents are stored.
	ArtifactDir string `mapstructure:"artifact_dir"`

	// BaseURL is the public prefix of certificate download links.
	BaseURL string `mapstructure:"base_url"`
}

func loadConfigFile(filename string) Config {
	vip := viper.New()
	vip.SetConfigFile(filename)

	vip.SetEnvPrefix("eventcore")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory.
func Load() Config {
	return loadConfigFile("config.yml")
}

// LoadTestConfig reads config_test.yml from the repo root, for
// integration tests running in package directories.
func LoadTestConfig(rootDir string) Config {
	return loadConfigFile(path.Join(rootDir, "config_test.yml"))
}
