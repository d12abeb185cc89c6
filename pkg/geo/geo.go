// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     geo
// Description: Coordinate predicates used by composite address validation
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package geo

import "math"

// Validator checks geographic coordinates
type Validator interface {
	ValidateLatitude(v float64) bool
	ValidateLongitude(v float64) bool
}

// Bounds is the default Validator: finite values within the WGS84 ranges.
type Bounds struct{}

// ValidateLatitude accepts finite values in [-90, 90]
func (Bounds) ValidateLatitude(v float64) bool {
	return isFinite(v) && v >= -90 && v <= 90
}

// ValidateLongitude accepts finite values in [-180, 180]
func (Bounds) ValidateLongitude(v float64) bool {
	return isFinite(v) && v >= -180 && v <= 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
