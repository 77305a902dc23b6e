// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package afservice

import (
	"errors"
	"fmt"
)

// UnsupportedSliceError is returned when no requested subscriber has usable
// SM data for the slice.
type UnsupportedSliceError struct {
	Sst int32
	Sd  string
}

func (e *UnsupportedSliceError) Error() string {
	return fmt.Sprintf("unsupported slice: S_NSSAI [SST: %d, SD: %s]", e.Sst, e.Sd)
}

// MalformedQuantityError is returned when a bitrate string does not start
// with an integer.
type MalformedQuantityError struct {
	Value string
	Err   error
}

func (e *MalformedQuantityError) Error() string {
	return fmt.Sprintf("malformed bitrate quantity %q: %v", e.Value, e.Err)
}

func (e *MalformedQuantityError) Unwrap() error {
	return e.Err
}

// UnknownDnnError is returned when no accepted subscriber of the slice
// declares the DNN.
type UnknownDnnError struct {
	Dnn string
	Sst int32
	Sd  string
}

func (e *UnknownDnnError) Error() string {
	return fmt.Sprintf("dnn %s is not subscribed in S_NSSAI [SST: %d, SD: %s]", e.Dnn, e.Sst, e.Sd)
}

var errEmptyQuantity = errors.New("empty quantity")
