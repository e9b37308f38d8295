// Package config manages user-level settings stored at ~/.appdemos/config.yaml.
// Settings can be overridden with APPDEMOS_* environment variables and cover
// the default output directory, preview listen address, log level and site
// title.
package config
