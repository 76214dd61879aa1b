package domain

import "errors"

var (
	// ErrRequestFailed is the single failure every remote call maps to: a
	// transport error, a non-2xx status or an undecodable body.
	ErrRequestFailed = errors.New("request failed")

	// ErrInvalidArgument marks input rejected before any request is sent.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoSession is returned when no login has been stored.
	ErrNoSession = errors.New("not logged in")
)
