// Package main is the entry point for the eduplay platform API.
//
// @title                       Eduplay Platform API
// @version                     1.0
// @description                 User accounts, sessions and physical game registration for the eduplay platform.
// @BasePath                    /api/v1/users
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s)", version, commit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
