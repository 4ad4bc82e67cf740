package main

import (
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"mc-command-center/app/server/auth"
	"mc-command-center/app/server/inits"
	"mc-command-center/app/server/jwt"
	"mc-command-center/app/server/store"
)

func seedAdminCommand() *cobra.Command {
	var email, username, password string

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the admin account if it does not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := inits.Config()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			// 命令行参数优先，其次是环境变量
			if email == "" {
				email = cfg.Admin.Email
			}
			if username == "" {
				username = cfg.Admin.Username
			}
			if password == "" {
				password = cfg.Admin.Password
			}
			if email == "" || password == "" {
				return errors.New("admin email and password are required (--email/--password or ADMIN_EMAIL/ADMIN_PASSWORD)")
			}

			l, err := inits.Logger(!cfg.System.IsProd)
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}
			defer func() { _ = l.Sync() }()

			db, err := inits.DB(ctx, cfg.System.DBConnectionString, !cfg.System.IsProd, l)
			if err != nil {
				return err
			}

			j, err := jwt.New(cfg.Security.SignatureSecretKey)
			if err != nil {
				return err
			}

			users := store.NewUsers(db)
			authenticator, err := auth.NewAuthenticator(users, j, auth.NewPasswordHasher(nil))
			if err != nil {
				return err
			}

			id, created, err := inits.SeedAdmin(ctx, users, authenticator, email, username, password)
			if err != nil {
				return err
			}

			if created {
				l.Info("created admin", zap.Uint("id", id), zap.String("email", email))
			} else {
				l.Info("admin already exists", zap.Uint("id", id), zap.String("email", email))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&username, "username", "", "admin display name (default \"admin\")")
	cmd.Flags().StringVar(&password, "password", "", "admin password")

	return cmd
}
