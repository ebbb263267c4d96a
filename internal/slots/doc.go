// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package slots is the validation engine for NLU slot values.
//
// Two validators share one result shape ([models.ValidationResult]):
// [Engine.ValidateFinite] checks candidates against an allow-list and
// [Engine.ValidateNumeric] checks them against a boolean constraint compiled
// by package expression. Both are pure: an Engine holds only immutable
// options and may be shared by any number of goroutines.
//
// Configuration problems (missing trigger or key, malformed records, bad
// constraints) are returned as errors wrapping the sentinels in errors.go.
// A value that simply fails validation is never an error; it yields a
// partially filled result.
package slots
