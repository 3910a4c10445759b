// Package main is the entry point for firesale, a command-line interface
// for Google Cloud Firestore. It authenticates with service-account
// credentials supplied via flags or environment variables and exposes
// subcommands for fetching, listing, and deleting documents.
package main

import "firesale/cmd"

func main() {
	cmd.Execute()
}
