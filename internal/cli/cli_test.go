package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/app"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/config"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

func testDeps(t *testing.T) (Deps, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := &config.Config{
		Auth:      config.AuthConfig{Secret: "cli-secret"},
		Timetable: config.TimetableConfig{CacheTTL: time.Minute},
	}
	return Deps{
		LoadConfig: func() (*config.Config, error) { return cfg, nil },
		NewLogger:  func(*config.Config) (*zap.Logger, error) { return zap.NewNop(), nil },
		NewApp: func(cfg *config.Config, logger *zap.Logger) (*app.App, error) {
			return app.Build(cfg, logger, sqlx.NewDb(db, "sqlmock"), nil), nil
		},
	}, mock
}

func run(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := NewRootCommand(deps)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTokenCommandMintsVerifiableToken(t *testing.T) {
	deps, _ := testDeps(t)

	out, err := run(t, deps, "token", "--role", "superadmin", "--user", "ops-1")
	require.NoError(t, err)

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "Bearer", payload.TokenType)

	claims, err := service.NewAuthService(nil, service.AuthConfig{AccessTokenSecret: "cli-secret"}).ValidateToken(payload.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
	assert.Equal(t, "ops-1", claims.UserID)
}

func TestTokenCommandRejectsUnknownRole(t *testing.T) {
	deps, _ := testDeps(t)

	_, err := run(t, deps, "token", "--role", "janitor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestCheckCommandRejectsCellOutsideGrid(t *testing.T) {
	deps, mock := testDeps(t)
	mock.ExpectClose()

	_, err := run(t, deps, "check", "--day", "Saturday", "--slot", "09:00-10:00")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateCommandRequiresDepartmentFlag(t *testing.T) {
	deps, _ := testDeps(t)

	_, err := run(t, deps, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "department")
}

func TestCachePurgeWithCacheDisabled(t *testing.T) {
	deps, _ := testDeps(t)

	out, err := run(t, deps, "cache", "purge")
	require.NoError(t, err)
	assert.Contains(t, out, "purged")
}

func TestConfigErrorsSurface(t *testing.T) {
	deps, _ := testDeps(t)
	deps.LoadConfig = func() (*config.Config, error) { return nil, errors.New("boom") }

	_, err := run(t, deps, "view", "--department", "dept-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestMigrateDownRejectsZeroSteps(t *testing.T) {
	deps, _ := testDeps(t)

	_, err := run(t, deps, "migrate", "down", "--steps", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be positive")
}
