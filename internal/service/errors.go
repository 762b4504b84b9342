package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrConfigIsNotSpecified  = errors.New("config is not specified")
)
