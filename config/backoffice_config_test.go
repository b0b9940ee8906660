package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitBackofficeConfig(t *testing.T) {
	cfg, err := InitBackofficeConfig("backoffice_config.test.toml", GetAbsPath("config"))
	require.NoError(t, err)

	assert.Equal(t, "backoffice_test", cfg.MongoDB.Database)
	assert.Equal(t, time.Hour, cfg.Token.TTL)
	assert.Equal(t, time.Second, cfg.Cache.PrincipalTTL)
	assert.Equal(t, "admin@test.local", cfg.Account.AdminEmail)
	require.NotNil(t, GetConfig())
	assert.Equal(t, cfg.Server.Host, GetConfig().Server.Host)
}

func TestInitBackofficeConfigEnvOverride(t *testing.T) {
	t.Setenv("BACKOFFICE_MONGODB_HOST", "mongo.internal")
	t.Setenv("BACKOFFICE_TOKEN_TTL", "15m")

	cfg, err := InitBackofficeConfig("backoffice_config.test", GetAbsPath("config"))
	require.NoError(t, err)
	assert.Equal(t, "mongo.internal", cfg.MongoDB.Host)
	assert.Equal(t, 15*time.Minute, cfg.Token.TTL)
}

func TestInitBackofficeConfigMissingFile(t *testing.T) {
	_, err := InitBackofficeConfig("does_not_exist", t.TempDir())
	assert.Error(t, err)
}

func TestSecretValueNeverPrints(t *testing.T) {
	s := SecretValue("hunter2")
	assert.Equal(t, "******", s.String())
	assert.Equal(t, "******", fmt.Sprintf("%v", s))
	assert.Equal(t, "hunter2", s.Value())
	assert.Equal(t, "", SecretValue("").String())
}

func TestMongoDBConfigURI(t *testing.T) {
	cfg := MongoDBConfig{User: "u", Password: "p@ss", Host: "db", Port: "27017"}
	assert.Equal(t, "mongodb://u:p%40ss@db:27017/?authSource=admin", cfg.URI())

	anon := MongoDBConfig{Host: "db"}
	assert.Equal(t, "mongodb://db/", anon.URI())

	cfg.Database = "backoffice"
	assert.Equal(t, "mongodb://u:p%40ss@db:27017/backoffice?authSource=admin", cfg.DatabaseURI())
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(t.TempDir()+"/.env"))
}
