package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SecretValue is a config string that never prints its content.
type SecretValue string

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return "******"
}

func (s SecretValue) Value() string {
	return string(s)
}

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type BackofficeConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	MongoDB MongoDBConfig `mapstructure:"mongodb"`
	Key     KeyConfig     `mapstructure:"key"`
	Token   TokenConfig   `mapstructure:"token"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Account AccountConfig `mapstructure:"account"`
}

type MongoDBConfig struct {
	Database string      `mapstructure:"database"`
	CAPem    string      `mapstructure:"ca_pem"`
	User     string      `mapstructure:"user"`
	Password SecretValue `mapstructure:"password"`
	Port     string      `mapstructure:"port"`
	Host     string      `mapstructure:"host"`
}

// URI builds the connection string. Credentials are omitted when no user is set.
func (c MongoDBConfig) URI() string {
	return c.uri("/")
}

// DatabaseURI is URI with the database name as path, the form migrate drivers expect.
func (c MongoDBConfig) DatabaseURI() string {
	return c.uri("/" + c.Database)
}

func (c MongoDBConfig) uri(path string) string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	if c.Port != "" {
		host = host + ":" + c.Port
	}
	u := url.URL{Scheme: "mongodb", Host: host, Path: path}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password.Value())
		u.RawQuery = url.Values{"authSource": {"admin"}}.Encode()
	}
	return u.String()
}

type KeyConfig struct {
	RsaPrivateKeyPem SecretValue `mapstructure:"rsa_private_key_pem"`
}

type TokenConfig struct {
	TTL    time.Duration `mapstructure:"ttl"`
	Issuer string        `mapstructure:"issuer"`
}

type CacheConfig struct {
	PrincipalTTL time.Duration `mapstructure:"principal_ttl"`
}

type AccountConfig struct {
	AdminName     string      `mapstructure:"admin_name"`
	AdminEmail    string      `mapstructure:"admin_email"`
	AdminPassword SecretValue `mapstructure:"admin_password"`
}

const (
	defaultConfigName = "backoffice_config"
	envPrefix         = "BACKOFFICE"
)

var (
	backofficeCfg *BackofficeConfig
)

func GetConfig() *BackofficeConfig {
	return backofficeCfg
}

func InitBackofficeConfig(configName string, configPath string) (BackofficeConfig, error) {
	var cfg BackofficeConfig
	v := viper.New()
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = defaultConfigName
	}
	configName = strings.TrimSuffix(configName, ".toml")
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", configName, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", configName, err)
	}
	backofficeCfg = &cfg
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("mongodb.database", "backoffice")
	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", "27017")
	v.SetDefault("token.ttl", "24h")
	v.SetDefault("token.issuer", "backoffice-api")
	v.SetDefault("cache.principal_ttl", "30s")
}

// LoadDotEnv loads a .env file into the process environment before the config is read.
// A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		err := godotenv.Load(p)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
