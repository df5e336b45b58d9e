package config

import "errors"

// Error variables for configuration loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrProfileEmpty       = errors.New("profile cannot be empty")
	ErrCapacityNegative   = errors.New("capacity cannot be negative")
	ErrCapacityTooLarge   = errors.New("capacity too large")
	ErrReportFormat       = errors.New("report_format must be text, json or yaml")
)
