// Package config loads runtime configuration for the qradmin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: QRADMIN_API_URL and QRADMIN_LOG_LEVEL. A .env file in the
//     working directory, or the one named by -e/-env, is loaded first;
//     variables already set in the process win over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the platform API
//	-t int      request timeout (seconds)
//	-l int      page size of list screens
//	-d string   path of the local SQLite database
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds. Absent keys leave the current value untouched:
//
//	{
//	  "api_url": "https://qr.example.com/api",
//	  "request_timeout": "15s",
//	  "page_size": 10,
//	  "db_path": "qradmin.db",
//	  "log_level": "info"
//	}
package config
