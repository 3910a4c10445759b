// Package cmd provides the cobra command tree for the firesale CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"firesale/internal/client"
	"firesale/internal/logging"
	"firesale/internal/version"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Persistent flag names.
const (
	flagProjectID   = "project-id"
	flagCredentials = "credentials"
	flagTimeout     = "timeout"
	flagOutput      = "output"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
)

// Viper keys for ambient configuration.
const (
	keyTimeout   = "timeout"
	keyOutput    = "output"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
	keyListLimit = "list.limit"
)

// envPrefix namespaces ambient configuration environment variables
// (FIRESALE_TIMEOUT, FIRESALE_LOG_LEVEL, ...). The credential variables are
// deliberately unprefixed; see internal/client.GatherEnvironment.
const envPrefix = "FIRESALE"

var (
	// appViper holds the merged ambient configuration for the current
	// invocation: flags over environment over config file over defaults.
	appViper *viper.Viper //nolint:gochecknoglobals // Shared invocation state, cobra CLI pattern.

	// appLogger is the invocation-scoped structured logger.
	appLogger logging.Logger //nolint:gochecknoglobals // Shared invocation state, cobra CLI pattern.

	// storeFactory builds the document store for data commands. Tests swap
	// this out for a fake.
	storeFactory = func(ctx context.Context, creds client.Credentials) (client.DocumentStore, error) { //nolint:gochecknoglobals // Test seam.
		return client.NewDatabaseContext(ctx, creds)
	}
)

// Execute gathers the process environment, builds the command tree, and runs
// it. It is called by main.main and exits non-zero on any error.
func Execute() {
	env := client.GatherEnvironment()
	root := NewRootCmd(env)

	ctx := logging.EnsureCorrelationID(context.Background())
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates the root command for the given environment snapshot.
// The project-id and credentials flags are marked required only when the
// corresponding environment variable is absent, so a parse error surfaces
// before any credential resolution when neither source can supply them.
func NewRootCmd(env client.Environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "firesale",
		Short:   "CLI Firestore interface",
		Version: version.Get().Version,
		Long: `firesale is a command-line interface for Google Cloud Firestore.

Credentials are taken from the --project-id and --credentials flags when both
are given, otherwise from the PROJECT_ID and GOOGLE_APPLICATION_CREDENTIALS
environment variables. The two sources are never mixed.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Commands that never touch the database do not need the
			// credential flags. Required-flag validation runs after this
			// hook, so the marking can be lifted here.
			if cmd.Name() == "version" {
				clearRequiredCredentialFlags(cmd)
			}
			return initAmbientConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// No recognized subcommand: print usage, touch no database.
			if err := cmd.Help(); err != nil {
				return err
			}
			ep := client.UsageEntryPoint(cmd.UsageString())
			return client.Dispatch(cmd.Context(), ep, nil, cmd.OutOrStdout(), client.DispatchOptions{Logger: appLogger})
		},
	}
	cmd.SetVersionTemplate(versionTemplate())

	pf := cmd.PersistentFlags()
	pf.StringP(flagProjectID, "p", "", "cloud project id (falls back to PROJECT_ID)")
	pf.StringP(flagCredentials, "c", "", "path to service-account credentials file (falls back to GOOGLE_APPLICATION_CREDENTIALS)")
	pf.Duration(flagTimeout, client.DefaultTimeout, "request timeout")
	pf.StringP(flagOutput, "o", client.OutputJSON, "output format (json, yaml)")
	pf.String(flagLogLevel, logging.LevelInfo, "log level (debug, info, warn, error)")
	pf.String(flagLogFormat, logging.FormatJSON, "log format (json, text)")

	if env.ProjectID == nil {
		_ = cmd.MarkPersistentFlagRequired(flagProjectID)
	}
	if env.CredentialsPath == nil {
		_ = cmd.MarkPersistentFlagRequired(flagCredentials)
	}

	cmd.AddCommand(newGetCmd(env))
	cmd.AddCommand(newDeleteCmd(env))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// clearRequiredCredentialFlags removes the required marking from the
// credential flags visible on cmd.
func clearRequiredCredentialFlags(cmd *cobra.Command) {
	for _, name := range []string{flagProjectID, flagCredentials} {
		if f := cmd.Flags().Lookup(name); f != nil {
			delete(f.Annotations, cobra.BashCompOneRequiredFlag)
		}
	}
}

// initAmbientConfig merges ambient settings from flags, FIRESALE_* environment
// variables, and an optional .firesale.yaml config file, then constructs the
// invocation logger.
func initAmbientConfig(cmd *cobra.Command) error {
	v := viper.New()

	v.SetDefault(keyTimeout, client.DefaultTimeout)
	v.SetDefault(keyOutput, client.OutputJSON)
	v.SetDefault(keyLogLevel, logging.LevelInfo)
	v.SetDefault(keyLogFormat, logging.FormatJSON)
	v.SetDefault(keyListLimit, client.DefaultListLimit)

	v.SetConfigName(".firesale")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Explicitly set flags take priority over environment and config file.
	bindings := map[string]string{
		keyTimeout:   flagTimeout,
		keyOutput:    flagOutput,
		keyLogLevel:  flagLogLevel,
		keyLogFormat: flagLogFormat,
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  v.GetString(keyLogLevel),
		Format: v.GetString(keyLogFormat),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	appViper = v
	appLogger = logger.WithComponent("cli")
	return nil
}

func versionTemplate() string {
	info := version.Get()
	return fmt.Sprintf("%s\nVersion: %s\nCommit: %s\nBuilt: %s\n",
		version.ApplicationName, info.Version, info.Commit, info.BuildTime)
}
