package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:4000", cfg.HTTP.Addr())
	assert.Equal(t, devJWTSecret, cfg.JWT.Secret, "fuera de producción se usa el secret de desarrollo")
	assert.False(t, cfg.Asset.Enabled())
	assert.Equal(t, "employees", cfg.Asset.Namespace)
}

func TestFromViper_ProductionRequiresSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_UnknownDriver(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "sqlite")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_AssetHostMarkerFromPublicURL(t *testing.T) {
	v := viper.New()
	v.Set("ASSET_BUCKET", "photos")
	v.Set("ASSET_PUBLIC_URL", "https://cdn.example.com/assets")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.Asset.Enabled())
	assert.Equal(t, "cdn.example.com", cfg.Asset.HostMarker)
}

func TestFromViper_AssetBucketRequiresPublicURL(t *testing.T) {
	v := viper.New()
	v.Set("ASSET_BUCKET", "photos")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "empleados", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/empleados?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
