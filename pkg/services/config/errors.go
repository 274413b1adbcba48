package config

import "errors"

var ErrUnknownSource = errors.New("unknown source")
