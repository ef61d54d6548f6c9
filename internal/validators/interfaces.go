// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the structure of data that enters the
// application from outside, such as metadata documents picked by the user.
//
// Validators only look at shape: they never judge the content of
// headlines or descriptions.
package validators

import "context"

// Validator validates an arbitrary value. The optional field names restrict
// validation to the named parts of the value.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
