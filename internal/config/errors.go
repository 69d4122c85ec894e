package config

import (
	"errors"
)

var (
	ErrConfigLoadFailed = errors.New("failed to load configuration")
	ErrInvalidValue     = errors.New("config value invalid")
)
