package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestGetPropertiesMergesProfileOverBase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "application.yaml", "remote_timeout: 2s\njwt_expiry_hours: 24\n")
	writeFile(t, dir, "reservation.yaml", "db_host: base-db\nremote_timeout: 3s\n")
	writeFile(t, dir, "reservation-docker.json", `{"db_host": "postgres", "redis_addr": "redis:6379"}`)

	svc := NewConfigService(dir, zap.NewNop())
	props, err := svc.GetProperties(context.Background(), "reservation", "docker")
	require.NoError(t, err)

	assert.Equal(t, "reservation", props.Name)
	assert.Equal(t, []string{"docker"}, props.Profiles)
	assert.Equal(t, "postgres", props.Source["db_host"])
	assert.Equal(t, "3s", props.Source["remote_timeout"])
	assert.Equal(t, 24, props.Source["jwt_expiry_hours"])
	assert.Equal(t, "redis:6379", props.Source["redis_addr"])
}

func TestGetPropertiesProfileOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "guest-default.yml", "port: \"8081\"\n")

	props, err := NewConfigService(dir, zap.NewNop()).GetProperties(context.Background(), "guest", "default")
	require.NoError(t, err)
	assert.Equal(t, "8081", props.Source["port"])
}

func TestGetPropertiesNotFound(t *testing.T) {
	_, err := NewConfigService(t.TempDir(), zap.NewNop()).GetProperties(context.Background(), "hotel", "default")
	assert.ErrorContains(t, err, "properties for hotel/default not found")
}

func TestGetPropertiesRejectsPathTraversal(t *testing.T) {
	svc := NewConfigService(t.TempDir(), zap.NewNop())

	_, err := svc.GetProperties(context.Background(), "../etc", "default")
	assert.ErrorContains(t, err, "invalid application name")

	_, err = svc.GetProperties(context.Background(), "hotel", "..")
	assert.ErrorContains(t, err, "invalid profile name")
}

func TestGetPropertiesEncryptedFileMustDecrypt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hotel-prod.enc.json", `{"db_pass": "not-really-encrypted"}`)

	_, err := NewConfigService(dir, zap.NewNop()).GetProperties(context.Background(), "hotel", "prod")
	assert.ErrorContains(t, err, "decrypt")
}
