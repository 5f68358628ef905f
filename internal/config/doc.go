// Package config loads metascrub configuration from local and global YAML
// files with precedence rules. It is internal; CLI code maps flags and files
// into walker configuration.
package config
