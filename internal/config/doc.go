// Package config handles configuration loading for the Telldemm admin console.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults, so an empty file (or
// no file at all via Default) yields a runnable configuration pointed at the
// production backend.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	api:
//	  base_url: "${TELLDEMM_API_BASE}"
//
// Syntax: ${VAR_NAME}
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	api:
//	  timeout: "10s"
//	session:
//	  ttl: "24h"
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: ":8080"
//
// Remote backend:
//
//	api:
//	  base_url: "https://apps.ekarigar.com/backend"
//	  timeout: "10s"
//
// Session cookie:
//
//	session:
//	  cookie_name: "auth_token"
//	  ttl: "24h"
//	  secure: true
//
// Session gate path policy:
//
//	gate:
//	  strict: false
//	  login_path: "/login"
//	  public_prefixes:
//	    - "/api/"
//
// Audit database:
//
//	database:
//	  path: "data/admin-console.db"
//
// Logging:
//
//	logging:
//	  level: "info"
//	  format: "text"
package config
