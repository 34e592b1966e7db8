package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/service"
)

func newTokenCommand(deps Deps) *cobra.Command {
	var (
		role   string
		userID string
		expiry time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator access token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			normalized := models.UserRole(strings.ToUpper(strings.TrimSpace(role)))
			switch normalized {
			case models.RoleSuperAdmin, models.RoleAdmin, models.RoleTeacher, models.RoleStudent:
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			auth := service.NewAuthService(nil, service.AuthConfig{
				AccessTokenSecret: cfg.Auth.Secret,
				AccessTokenExpiry: expiry,
				Issuer:            "timetable-api",
			})
			token, expiresAt, err := auth.IssueToken(userID, normalized, "")
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"access_token": token,
				"token_type":   "Bearer",
				"expires_at":   expiresAt,
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", string(models.RoleAdmin), "role carried by the token")
	cmd.Flags().StringVar(&userID, "user", "", "user id (random when empty)")
	cmd.Flags().DurationVar(&expiry, "expiry", time.Hour, "token lifetime")
	return cmd
}
