// Package fmv evaluates the fair-market-value regression formula
//
//	FMV(TP) = A + B * (TP - TP0)^alpha   for TP > TP0
//	FMV(TP) = A                          otherwise
//
// A and TP0 are fixed in-system constants. B and alpha come from the
// offline regression fit when its metrics file is available and fall back
// to built-in defaults otherwise, so the calculator is always usable.
package fmv

import (
	"math"

	"kickboard.kickmetrics.org/internal/models"
)

// Fixed formula constants. These are not read from the metrics file.
const (
	// BaselineValue is the floor value assigned below the points threshold.
	BaselineValue = 3_000_000.0
	// BaselineTotalPoints is the total-points threshold TP0.
	BaselineTotalPoints = 200.0
)

// Built-in coefficient defaults, used when the metrics source is missing
// or a field does not parse.
const (
	DefaultScale    = 558.0
	DefaultExponent = 1.445
)

// Curve sampling defaults. The upper bound and step are view preferences,
// not formula properties; callers may override them.
const (
	DefaultCurveUpper = 2000.0
	DefaultCurveStep  = 25.0
)

// Params are the regression coefficients consumed by the evaluator.
type Params struct {
	Scale    float64 `json:"scale"`
	Exponent float64 `json:"exponent"`
}

// DefaultParams returns the built-in coefficients.
func DefaultParams() Params {
	return Params{Scale: DefaultScale, Exponent: DefaultExponent}
}

// ParamsFrom extracts coefficients from a metrics record, substituting
// the built-in default for each field that is absent or unparseable. The
// second return value reports whether any default was applied.
func ParamsFrom(r models.Record) (Params, bool) {
	p := DefaultParams()
	usedDefaults := false

	if v, ok := r.Float(models.MetricsColScale); ok {
		p.Scale = v
	} else {
		usedDefaults = true
	}

	if v, ok := r.Float(models.MetricsColExponent); ok {
		p.Exponent = v
	} else {
		usedDefaults = true
	}

	return p, usedDefaults
}

// Evaluate computes FMV for a total-points input. Inputs at or below the
// baseline threshold, and NaN inputs from unparseable user entry, yield
// the baseline value. Both the live calculation and the curve sampler go
// through this one function so they can never disagree.
func Evaluate(tp float64, p Params) float64 {
	if math.IsNaN(tp) || tp <= BaselineTotalPoints {
		return BaselineValue
	}
	return BaselineValue + p.Scale*math.Pow(tp-BaselineTotalPoints, p.Exponent)
}

// Sample is one point of the plotted formula curve.
type Sample struct {
	TotalPoints float64 `json:"totalPoints"`
	Value       float64 `json:"value"`
}

// Curve samples the formula from the baseline threshold to upper,
// inclusive, at a constant step.
func Curve(p Params, upper, step float64) []Sample {
	if step <= 0 || upper < BaselineTotalPoints {
		return nil
	}

	n := int((upper - BaselineTotalPoints) / step)
	samples := make([]Sample, 0, n+1)
	for i := 0; i <= n; i++ {
		tp := BaselineTotalPoints + float64(i)*step
		samples = append(samples, Sample{TotalPoints: tp, Value: Evaluate(tp, p)})
	}
	return samples
}
