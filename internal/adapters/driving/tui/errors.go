package tui

import "errors"

// ErrMissingSession is returned when the session service is not provided.
var ErrMissingSession = errors.New("tui: session service is required")
