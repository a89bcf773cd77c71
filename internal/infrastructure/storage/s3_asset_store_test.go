package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/photo"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/storage"
	"github.com/jhoicas/Empleados-api/pkg/config"
)

func testConfig() config.AssetConfig {
	return config.AssetConfig{
		Bucket:          "photos",
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		PublicURL:       "http://localhost:9000/",
		Namespace:       "employees",
	}
}

func TestNewS3AssetStore_SinBucketFalla(t *testing.T) {
	cfg := testConfig()
	cfg.Bucket = ""
	_, err := storage.NewS3AssetStore(context.Background(), cfg)
	assert.Error(t, err)
}

func TestObjectURL(t *testing.T) {
	s, err := storage.NewS3AssetStore(context.Background(), testConfig())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/photos/employees/abc", s.ObjectURL("employees/abc"))
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "employees/abc", storage.ObjectKey("employees", "abc"))
	assert.Equal(t, "employees/abc", storage.ObjectKey("/employees/", "abc"))
	assert.Equal(t, "abc", storage.ObjectKey("", "abc"))
}

func TestObjectURL_PublicIDRoundTrip(t *testing.T) {
	s, err := storage.NewS3AssetStore(context.Background(), testConfig())
	require.NoError(t, err)

	key := storage.ObjectKey("employees", "4f2c9e")
	id, ok := photo.PublicID(s.ObjectURL(key))
	require.True(t, ok)
	assert.Equal(t, key, id, "el identificador derivado de la URL debe ser la clave del objeto")
}
