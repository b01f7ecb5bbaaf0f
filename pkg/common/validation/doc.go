// Package validation provides common validation utilities for parsed values
// and configuration parameters across the crontab library.
//
// The bounds check used by the field parsers lives here so that every
// out-of-bounds failure carries the same ValidationError shape, whether it
// came from a crontab field or from a component's configuration.
package validation
