package cmd

import (
	"context"
	"fmt"
	"time"

	"firesale/internal/client"
	"firesale/internal/logging"

	"github.com/spf13/cobra"
)

// runEntryPoint is the shared execution path for the data commands. It
// resolves credentials atomically (CLI pair over environment pair), builds
// the document store, and dispatches the entry point. Past this point the
// arguments have parsed, so usage text is suppressed and failures surface
// only through the output envelope and a non-zero exit status.
func runEntryPoint(cmd *cobra.Command, env client.Environment, ep client.EntryPoint) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	out := cmd.OutOrStdout()

	format := appViper.GetString(keyOutput)
	if !client.ValidOutputFormat(format) {
		err := fmt.Errorf("invalid output format %q (expected json or yaml)", format)
		_ = client.WriteError(out, client.OutputJSON, client.ErrCodeInvalidConfig, err.Error())
		return err
	}

	creds, err := client.ResolveCredentials(environmentFromFlags(cmd), env)
	if err != nil {
		_ = client.WriteError(out, format, client.ErrCodeInvalidConfig, err.Error())
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appViper.GetDuration(keyTimeout))
	defer cancel()

	logger := appLogger
	logger.Debug(ctx, "resolved credentials", logging.Fields{
		"project_id": creds.ProjectID,
	})

	start := time.Now()
	store, err := storeFactory(ctx, creds)
	if err != nil {
		logger.ErrorWithError(ctx, err, "failed to create database context", nil)
		_ = client.WriteError(out, format, client.ErrCodeInvalidConfig, err.Error())
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn(ctx, "failed to close database context", logging.Fields{"error": cerr.Error()})
		}
	}()
	logger.Debug(ctx, "database context created", logging.Fields{
		"elapsed": time.Since(start).String(),
	})

	opts := client.DispatchOptions{
		Limit:  appViper.GetInt(keyListLimit),
		Format: format,
		Logger: logger,
	}
	if err := client.Dispatch(ctx, ep, store, out, opts); err != nil {
		logger.ErrorWithError(ctx, err, "operation failed", logging.Fields{
			"entry_point": ep.Kind.String(),
		})
		_ = client.WriteError(out, format, client.ClassifyError(err), err.Error())
		return err
	}
	return nil
}

// environmentFromFlags snapshots the credential flags as an Environment.
// Only flags the user explicitly set are captured, so an untouched flag
// never masks the process environment during resolution.
func environmentFromFlags(cmd *cobra.Command) client.Environment {
	var env client.Environment
	if cmd.Flags().Changed(flagProjectID) {
		v, _ := cmd.Flags().GetString(flagProjectID)
		env.ProjectID = &v
	}
	if cmd.Flags().Changed(flagCredentials) {
		v, _ := cmd.Flags().GetString(flagCredentials)
		env.CredentialsPath = &v
	}
	return env
}
