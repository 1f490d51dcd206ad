// Package config loads routeopt settings from built-in defaults, an optional
// YAML file, an optional .env file and ROUTEOPT_* environment variables, in
// increasing order of precedence. Command-line flags are applied on top by
// the caller.
package config
