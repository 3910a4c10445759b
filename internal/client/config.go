package client

import (
	"errors"
	"os"
	"time"
)

// Environment variable names consumed for credential fallback. These are the
// standard Google Cloud names and are read verbatim, without any prefix.
const (
	// EnvCredentials is the environment variable holding the path to the
	// service-account credentials file.
	EnvCredentials = "GOOGLE_APPLICATION_CREDENTIALS"

	// EnvProjectID is the environment variable holding the cloud project id.
	EnvProjectID = "PROJECT_ID"
)

// Default ambient configuration values.
const (
	// DefaultTimeout is the default per-invocation request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultListLimit is the default maximum number of documents returned
	// when viewing a collection. Zero means no limit.
	DefaultListLimit = 0
)

// ErrNoCredentials is returned when neither the CLI flags nor the process
// environment supply a complete (project id, credentials path) pair.
var ErrNoCredentials = errors.New(
	"failed to create database context: project id and credentials path not provided via flags or environment")

// Environment is a snapshot of credential configuration from a single
// source (process environment or CLI flags). Nil fields mean the value was
// not supplied by that source; absence is never collapsed to an empty
// string.
type Environment struct {
	CredentialsPath *string
	ProjectID       *string
}

// Complete reports whether this source supplied both values.
func (e Environment) Complete() bool {
	return e.CredentialsPath != nil && e.ProjectID != nil
}

// GatherEnvironment snapshots the two credential variables from the process
// environment. Values are not validated here; a credentials path that does
// not exist on disk surfaces later, when the database context is built.
func GatherEnvironment() Environment {
	var env Environment
	if v, ok := os.LookupEnv(EnvCredentials); ok {
		env.CredentialsPath = &v
	}
	if v, ok := os.LookupEnv(EnvProjectID); ok {
		env.ProjectID = &v
	}
	return env
}

// Credentials is the resolved (project id, credentials path) pair used for
// one invocation.
type Credentials struct {
	ProjectID       string
	CredentialsPath string
}

// ResolveCredentials merges the CLI-supplied and environment-supplied
// credential sources. The merge is atomic: the complete CLI pair wins, else
// the complete environment pair, else ErrNoCredentials. A partial pair from
// one source is never combined with the other source's fields.
func ResolveCredentials(cli, env Environment) (Credentials, error) {
	if cli.Complete() {
		return Credentials{
			ProjectID:       *cli.ProjectID,
			CredentialsPath: *cli.CredentialsPath,
		}, nil
	}
	if env.Complete() {
		return Credentials{
			ProjectID:       *env.ProjectID,
			CredentialsPath: *env.CredentialsPath,
		}, nil
	}
	return Credentials{}, ErrNoCredentials
}
