// Package config defines the application configuration and its loading. The
// Config struct is built once at process start and passed by reference into
// the components that need it; nothing in this package is a global.
package config
