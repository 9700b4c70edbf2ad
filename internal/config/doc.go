// Package config provides configuration loading, merging, and validation
// facilities for the lendit server.
//
// Configuration is assembled from multiple sources; the first source to set
// a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The resulting config is
// built once at startup and passed by value into constructors.
package config
