// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for library, dataset and CLI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Toolkit version
	Toolkit = "1.0.0"

	// Component versions
	Dataset    = "1.0.0" // embedded country documents
	Contactctl = "1.0.0"
)

// Commit is set at build time via -ldflags "-X ...version.Commit=<sha>"
var Commit = "dev"

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "dataset":
		return Dataset
	case "contactctl":
		return Contactctl
	default:
		return Toolkit
	}
}
