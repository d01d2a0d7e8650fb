// Package config assembles the tablesync client configuration from three
// layered sources: command-line flags, environment variables, and an optional
// JSON file named by the CONFIG variable or the -c flag. Later layers never
// overwrite values already set by earlier ones; flags win over env, env wins
// over JSON, and built-in defaults fill whatever remains empty.
package config
