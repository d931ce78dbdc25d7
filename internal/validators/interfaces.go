// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming requests before they reach the
// service layer.
//
// A Validator accepts any value and an optional list of field names that
// restricts validation to those fields. Unknown types yield
// ErrUnsupportedType and unknown field names yield ErrUnknownField.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
