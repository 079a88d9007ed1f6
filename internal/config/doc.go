// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with "first non-zero value wins" semantics in the order
// env → flags → JSON, defaults are applied afterwards, and the final config
// is validated before use. The server and the terminal reader client expose
// separate entry points: GetStructuredConfig and GetClientConfig.
package config
