package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/procargo/backoffice/backoffice/app"
	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/procargo/backoffice/backoffice/migration"
	"github.com/procargo/backoffice/config"
	"github.com/procargo/backoffice/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	options := &CommandLineOptions{}
	root := &cobra.Command{
		Use:           "backoffice",
		Short:         "Customs clearance back-office API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(options.EnvFile); err != nil {
				return err
			}
			cfg, err := config.InitBackofficeConfig(options.ConfigName, options.ConfigDir)
			if err != nil {
				// permissions and authorize work without a config file
				logger.InitLogger()
				return nil
			}
			logger.InitLoggerWithOptions(logger.Options{Level: cfg.Logging.Level, Console: cfg.Logging.Console})
			return nil
		},
	}
	BindCommandLineOptions(root, options)
	root.AddCommand(
		newServeCommand(options),
		newSeedAdminCommand(options),
		newPermissionsCommand(),
		newAuthorizeCommand(),
	)
	return root
}

func newServeCommand(options *CommandLineOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			PrintCommandLineOptions(ctx, *options)
			restApp, err := app.NewRestApp(options.ConfigName, options.ConfigDir)
			if err != nil {
				return err
			}
			if err := restApp.Start(ctx); err != nil {
				return err
			}
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			return restApp.Stop(context.Background())
		},
	}
}

func newSeedAdminCommand(options *CommandLineOptions) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the GENERAL_MANAGER account if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serviceModule, err := app.ServiceModule(options.ConfigName, options.ConfigDir)
			if err != nil {
				return err
			}
			seed := func(svc domain.Service, cfg config.AccountConfig) error {
				if email == "" {
					email = cfg.AdminEmail
				}
				if password == "" {
					password = cfg.AdminPassword.Value()
				}
				return svc.CreateAdminUserIfNotExists(cmd.Context(), email, password)
			}
			seedApp := fx.New(serviceModule, fx.NopLogger, fx.Invoke(migration.RunMongoMigration), fx.Invoke(seed))
			return seedApp.Err()
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email, defaults to account.admin_email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password, defaults to account.admin_password")
	return cmd
}

type permissionsDump struct {
	Roles  []domain.RoleDefinition              `json:"roles"`
	Guards map[domain.Action]domain.Requirement `json:"guards"`
}

func newPermissionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "permissions",
		Short: "Print the role table and route guards as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(permissionsDump{Roles: domain.RoleTable(), Guards: domain.GuardTable()})
		},
	}
}

func newAuthorizeCommand() *cobra.Command {
	var sessionFile, action string
	var permissions []string
	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Evaluate a persisted session against an action or a permission list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			blob, err := os.ReadFile(sessionFile)
			if err != nil {
				return errors.Wrap(err, "read session")
			}
			session, err := domain.RestoreSession(blob)
			if err != nil {
				return err
			}

			var allowed bool
			switch {
			case action != "":
				allowed = domain.Allowed(session.User, domain.Action(action))
			case len(permissions) > 0:
				perms := make([]domain.Permission, 0, len(permissions))
				for _, p := range permissions {
					perms = append(perms, domain.Permission(p))
				}
				allowed = domain.Authorize(session.User, domain.RequirePermissions(perms...))
			default:
				return errors.New("one of --action or --permission is required")
			}

			if !allowed {
				fmt.Fprintln(cmd.OutOrStdout(), "denied")
				return errors.Errorf("role %s is not allowed", session.User.Role())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "allowed")
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionFile, "session", "session.json", "Session JSON as returned by login")
	cmd.Flags().StringVar(&action, "action", "", "Guarded action, for example order.approve")
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "Permissions of which any one suffices")
	return cmd
}
