// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     country
// Description: Cross-check of the dataset against libphonenumber metadata
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package country

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// regionAliases maps dataset keys that differ from libphonenumber regions
var regionAliases = map[string]string{
	"uk": "GB",
}

// Finding describes one disagreement between a record and libphonenumber
type Finding struct {
	Country string `json:"country"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s.%s: %s", f.Country, f.Field, f.Message)
}

// Region returns the libphonenumber region code for a dataset key
func Region(code string) string {
	if region, ok := regionAliases[code]; ok {
		return region
	}
	return strings.ToUpper(code)
}

// Audit compares every record's calling code with libphonenumber.
// An empty result means the dataset agrees with the metadata.
func Audit(ds *Dataset) []Finding {
	var findings []Finding
	for _, code := range ds.Codes() {
		rec := ds.records[code]
		region := Region(code)

		expected := phonenumbers.GetCountryCodeForRegion(region)
		if expected == 0 {
			findings = append(findings, Finding{
				Country: code,
				Field:   "region",
				Message: fmt.Sprintf("region %s unknown to libphonenumber", region),
			})
			continue
		}
		if expected != rec.CallingCode {
			findings = append(findings, Finding{
				Country: code,
				Field:   "calling_code",
				Message: fmt.Sprintf("dataset has +%d, libphonenumber has +%d", rec.CallingCode, expected),
			})
		}
	}
	return findings
}
