package search

import "errors"

// ErrNoSession is returned when the view is built without a session.
var ErrNoSession = errors.New("search view: session service is required")
