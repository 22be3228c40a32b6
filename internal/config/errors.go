package config

import "errors"

// ErrMissingConfig is returned when no City Hall URL could be found in any
// configuration source.
var ErrMissingConfig = errors.New("city hall url is not configured: pass -url, set CITYHALL_URL, or provide a config file")
