// Package config resolves the CLI defaults from the environment.
//
// An optional .env file in the working directory is loaded first; variables
// already set in the process environment win over it. Recognised variables:
//
//	WILSONCI_CONF        confidence level in (0,1)        (default 0.95)
//	WILSONCI_DIGITS      decimal places, >= 0             (default 2)
//	WILSONCI_UNIT        "percent" or "prop"              (default percent)
//	WILSONCI_LOG_LEVEL   zerolog level name               (default warn)
//
// Invalid values are logged and replaced by the default. Command-line flags
// override everything resolved here.
package config
