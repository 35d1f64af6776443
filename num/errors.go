// Copyright 2026 The MoonGeo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"errors"
	"fmt"
)

// Error kinds shared by all formula packages. Every formula either succeeds
// with a physically meaningful number or fails with one of these; NaN or Inf
// is never returned alongside a nil error.
var (

	// ErrInput indicates a parameter outside its documented physical range;
	// e.g. negative width, zero safety factor, void ratio ≤ -1
	ErrInput = errors.New("input outside documented range")

	// ErrDomain indicates a transcendental operation evaluated outside its
	// mathematical domain; e.g. tangent at 90°
	ErrDomain = errors.New("argument outside mathematical domain")
)

// InputErr returns a formatted error wrapping ErrInput
func InputErr(msg string, prms ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(msg, prms...), ErrInput)
}

// DomainErr returns a formatted error wrapping ErrDomain
func DomainErr(msg string, prms ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(msg, prms...), ErrDomain)
}
