// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with STOREFRONT_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   REST API base URL
//	-i int      token expiration check interval (seconds)
//	-t int      request timeout (seconds)
//	-d string   SQLite database path
//
// # JSON schema
//
// Intervals are timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "base_url": "https://shop.example/api",
//	  "request_timeout": "10s",
//	  "expiration_check_interval": "1m",
//	  "database_path": "storefront.db",
//	  "log_level": "debug",
//	  "log_backend": "zap",
//	  "retry_max": 2
//	}
//
// # Environment
//
//	STOREFRONT_BASE_URL, STOREFRONT_REQUEST_TIMEOUT,
//	STOREFRONT_EXPIRATION_CHECK_INTERVAL, STOREFRONT_DATABASE_PATH,
//	STOREFRONT_LOG_LEVEL, STOREFRONT_LOG_BACKEND, STOREFRONT_RETRY_MAX
package config
