// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigurationNotTable = ProcessError("configuration did not return a table")
	ErrInvalidBlockNumber    = InvalidError("midstate block number is invalid")
	ErrInvalidCaseValue      = InvalidError("case value is out of range")
	ErrInvalidFieldLength    = LengthError("field length is invalid")
	ErrInvalidHeaderLength   = LengthError("header length is invalid")
	ErrInvalidHexString      = InvalidError("hex string is invalid")
	ErrInvalidLogFileName    = InvalidError("log file must be a plain file name")
	ErrInvalidMidstateLength = LengthError("midstate data is not a multiple of the block size")
	ErrInvalidNonce          = InvalidError("nonce is invalid")
	ErrInvalidNonceRange     = InvalidError("nonce range is invalid")
	ErrInvalidStrategy       = InvalidError("hash strategy is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTarget         = InvalidError("leading zero bit target is out of range")
	ErrInvalidWorkerCount    = InvalidError("worker count is invalid")
	ErrMissingCaseField      = NotFoundError("case field is missing")
	ErrNonceNotFound         = NotFoundError("no solution found")
	ErrShortMidstateStream   = ProcessError("stream closed before reaching requested block")
	ErrUnsupportedHashState  = ProcessError("unsupported hash state encoding")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
