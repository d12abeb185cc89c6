// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     country
// Description: Decoding and validation of the embedded country documents
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package country

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"
	_ "time/tzdata" // timezone validation must not depend on the host zoneinfo

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	cerror "github.com/msto63/contact/pkg/core/error"
)

//go:embed data/*.yaml
var embedded embed.FS

// document is the on-disk shape of one country file
type document struct {
	Code         string            `yaml:"code"`
	Name         string            `yaml:"name"`
	CallingCode  int               `yaml:"calling_code"`
	PhoneLength  Bounds            `yaml:"phone_length"`
	PostalLength Bounds            `yaml:"postal_length"`
	Metric       bool              `yaml:"metric"`
	Currency     string            `yaml:"currency"`
	Timezones    []string          `yaml:"timezones"`
	Subdivisions map[string]string `yaml:"subdivisions"`
}

func (doc document) record() Record {
	subs := make(map[string]Subdivision, len(doc.Subdivisions))
	for code, name := range doc.Subdivisions {
		subs[code] = Subdivision{Name: name}
	}
	return Record{
		Code:         doc.Code,
		Name:         doc.Name,
		CallingCode:  doc.CallingCode,
		PhoneLength:  doc.PhoneLength,
		PostalLength: doc.PostalLength,
		IsMetric:     doc.Metric,
		Currency:     doc.Currency,
		Subdivisions: subs,
		Timezones:    doc.Timezones,
	}
}

var defaultDataset = sync.OnceValues(func() (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
})

// Default returns the compiled-in dataset. It is decoded on first use and
// shared by every caller afterwards.
func Default() (*Dataset, error) {
	return defaultDataset()
}

// MustDefault is like Default but panics if the embedded data is invalid
func MustDefault() *Dataset {
	ds, err := Default()
	if err != nil {
		panic(err)
	}
	return ds
}

// Load decodes every *.yaml file at the root of fsys into a Dataset.
// Each record is validated; an unknown key, an invalid record or a
// duplicate code fails the load.
func Load(fsys fs.FS) (*Dataset, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, cerror.Wrap(err, "list country documents").WithCode(cerror.CodeDatasetInvalid)
	}
	if len(files) == 0 {
		return nil, cerror.New("no country documents found").WithCode(cerror.CodeDatasetInvalid)
	}

	validate := validator.New()
	records := make(map[string]Record, len(files))

	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, cerror.Wrap(err, "read country document").
				WithCode(cerror.CodeDatasetInvalid).
				WithDetail("file", name)
		}

		var doc document
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, cerror.Wrap(err, "decode country document").
				WithCode(cerror.CodeDatasetInvalid).
				WithDetail("file", name)
		}

		rec := doc.record()
		if err := check(validate, rec); err != nil {
			return nil, cerror.Wrap(err, fmt.Sprintf("invalid country document %s", path.Base(name))).
				WithCode(cerror.CodeDatasetInvalid).
				WithDetail("file", name)
		}
		if _, dup := records[rec.Code]; dup {
			return nil, cerror.New("duplicate country code").
				WithCode(cerror.CodeDatasetInvalid).
				WithDetail("file", name).
				WithDetail("country", rec.Code)
		}
		records[rec.Code] = rec
	}

	return &Dataset{records: records}, nil
}

// check enforces the record shape and the bounds invariants
func check(validate *validator.Validate, rec Record) error {
	if err := validate.Struct(rec); err != nil {
		return err
	}
	if !rec.PhoneLength.HasMin() || !rec.PhoneLength.HasMax() {
		return fmt.Errorf("phone length bounds are required, got %d..%d", rec.PhoneLength.Min, rec.PhoneLength.Max)
	}
	if !rec.PhoneLength.Consistent() {
		return fmt.Errorf("phone length min %d exceeds max %d", rec.PhoneLength.Min, rec.PhoneLength.Max)
	}
	if !rec.PostalLength.Consistent() {
		return fmt.Errorf("postal length min %d exceeds max %d", rec.PostalLength.Min, rec.PostalLength.Max)
	}
	return nil
}
