package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: "USR002", Username: "dokter123", Role: models.RoleDoctor}

	token, err := utils.GenerateToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "dokter123", claims.Username)
	assert.Equal(t, models.RoleDoctor, claims.Role)
	assert.Equal(t, "USR002", claims.Subject)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	cfg := testConfig()
	user := &models.User{ID: "USR002", Username: "dokter123", Role: models.RoleDoctor}

	token, err := utils.GenerateToken(user, cfg)
	require.NoError(t, err)

	_, err = utils.ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpirationMinutes = -5
	user := &models.User{ID: "USR002", Username: "dokter123", Role: models.RoleDoctor}

	token, err := utils.GenerateToken(user, cfg)
	require.NoError(t, err)

	_, err = utils.ValidateToken(token, cfg.JWTSecret)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := utils.ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
