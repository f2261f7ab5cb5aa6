package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"helprequest-service/internal/auth"
	"helprequest-service/internal/config"
)

// newTokenCmd выпускает bearer-токен для локальной разработки и e2e-тестов.
func newTokenCmd() *cobra.Command {
	var (
		email string
		admin bool
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a signed bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Auth.TokenTTL
			}

			roles := []string{auth.RoleUser}
			if admin {
				roles = append(roles, auth.RoleAdmin)
			}

			token, err := auth.NewJWTService(cfg.Auth.JWTSecret, ttl).Generate(email, roles)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the caller")
	cmd.Flags().BoolVar(&admin, "admin", false, "add ROLE_ADMIN")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to auth.token_ttl)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
