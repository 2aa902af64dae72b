// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrChallengeLength         = InvalidError("challenge length is invalid")
	ErrDigestLength            = InvalidError("digest length is invalid")
	ErrFloorUnmet              = ProcessError("no solution met the difficulty floor")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrNoSubmitEndpoints       = InvalidError("no submit endpoints are configured")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrParameterSourceRequired = InvalidError("parameter source is required")
	ErrSubmitQueueOverflow     = ProcessError("submit queue overflow")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
