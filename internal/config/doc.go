// Package config loads and validates application configuration from
// environment variables and an optional config file. Secrets (the JWT signing
// secret and the database URL) are supplied out-of-band via the environment.
package config
