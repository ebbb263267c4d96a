// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package slots

import (
	"github.com/MKhiriev/slot-validation-service/internal/expression"
	"github.com/MKhiriev/slot-validation-service/models"
)

// Options tune the engine.
type Options struct {
	// Limits bound the cost of compiling a constraint.
	Limits expression.Limits

	// UppercasePickFirstNumeric upper-cases a textual value picked by the
	// numeric validator in pick-first mode. Off by default, in which case
	// only the collect-all branch upper-cases text.
	UppercasePickFirstNumeric bool
}

// Engine runs slot validations.
type Engine struct {
	opts Options
}

// NewEngine returns an Engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// FiniteParams are the inputs of [Engine.ValidateFinite].
type FiniteParams struct {
	Values          []models.ValueRecord
	SupportedValues []string
	InvalidTrigger  string
	Key             string
	PickFirst       bool
}

// NumericParams are the inputs of [Engine.ValidateNumeric].
type NumericParams struct {
	Values         []models.ValueRecord
	InvalidTrigger string
	Key            string
	PickFirst      bool
	Constraint     string
	VarName        string
}

// FiniteParamsFromRequest extracts engine inputs from a transport payload.
func FiniteParamsFromRequest(req models.FiniteValuesRequest) FiniteParams {
	return FiniteParams{
		Values:          req.Values,
		SupportedValues: req.SupportedValues,
		InvalidTrigger:  req.InvalidTrigger,
		Key:             req.Key,
		PickFirst:       req.PickFirst,
	}
}

// NumericParamsFromRequest extracts engine inputs from a transport payload.
func NumericParamsFromRequest(req models.NumericValuesRequest) NumericParams {
	return NumericParams{
		Values:         req.Values,
		InvalidTrigger: req.InvalidTrigger,
		Key:            req.Key,
		PickFirst:      req.PickFirst,
		Constraint:     req.Constraint,
		VarName:        req.VarName,
	}
}

func checkOutputConfig(trigger, key string) error {
	if trigger == "" {
		return ErrMissingTrigger
	}
	if key == "" {
		return ErrMissingKey
	}
	return nil
}
