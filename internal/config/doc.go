// Package config loads engine configuration for the input layer and the
// demo binary.
//
// Values resolve in three layers: built-in defaults, then a TOML file,
// then INPUTSTORM_* environment variables. Later layers win. A missing
// config file is not an error; the defaults simply stand.
//
// The package also provides an fsnotify-backed file watcher used for
// config and action-table hot reload.
package config
