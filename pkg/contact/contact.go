// ============================================================================
// meinDENKWERK (mDW) - Contact Toolkit
// ============================================================================
//
// Package:     contact
// Description: Host facing entry point wiring dataset, validation and codec
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package contact is the surface a host application uses: country lookups,
// phone and address sanitation, validation, identifier transforms and
// record assembly, all bound to one dataset and one configuration.
//
// A *Contact is immutable after New and safe for concurrent use.
package contact

import (
	"os"

	"go.uber.org/zap"

	"github.com/msto63/contact/pkg/contact/assemble"
	"github.com/msto63/contact/pkg/contact/codec"
	"github.com/msto63/contact/pkg/contact/country"
	"github.com/msto63/contact/pkg/contact/validate"
	"github.com/msto63/contact/pkg/core/config"
	cerror "github.com/msto63/contact/pkg/core/error"
	"github.com/msto63/contact/pkg/geo"
)

// Contact bundles the toolkit components
type Contact struct {
	ds        *country.Dataset
	cfg       *config.Config
	validator *validate.Validator
	codec     *codec.Codec
	assembler assemble.Assembler
	logger    *zap.Logger
}

type options struct {
	ds     *country.Dataset
	cfg    *config.Config
	geo    geo.Validator
	logger *zap.Logger
}

// Option configures New
type Option func(*options)

// WithDataset uses ds instead of the configured or embedded dataset
func WithDataset(ds *country.Dataset) Option {
	return func(o *options) { o.ds = ds }
}

// WithConfig sets the configuration; the default is config.Default()
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithGeo sets the coordinate validator; the default is geo.Bounds
func WithGeo(gv geo.Validator) Option {
	return func(o *options) { o.geo = gv }
}

// WithLogger sets the logger; the default discards everything
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New wires a Contact. The dataset comes from WithDataset, else from
// General.DataDir, else the embedded documents.
func New(opts ...Option) (*Contact, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg == nil {
		o.cfg = config.Default()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.geo == nil {
		o.geo = geo.Bounds{}
	}

	ds, err := resolveDataset(o)
	if err != nil {
		return nil, err
	}

	var fallback any
	if o.cfg.Address.IDFallback != "" {
		fallback = o.cfg.Address.IDFallback
	}

	o.logger.Debug("contact toolkit ready",
		zap.Int("countries", ds.Len()),
		zap.String("data_dir", o.cfg.General.DataDir),
	)

	return &Contact{
		ds:        ds,
		cfg:       o.cfg,
		validator: validate.New(ds, o.cfg.Limits(), o.geo),
		codec:     codec.New(ds),
		assembler: assemble.NewAddressAssembler(fallback),
		logger:    o.logger,
	}, nil
}

func resolveDataset(o options) (*country.Dataset, error) {
	if o.ds != nil {
		return o.ds, nil
	}
	if dir := o.cfg.General.DataDir; dir != "" {
		ds, err := country.Load(os.DirFS(dir))
		if err != nil {
			return nil, cerror.Wrap(err, "load country data").WithDetail("data_dir", dir)
		}
		return ds, nil
	}
	return country.Default()
}

// Dataset returns the bound dataset
func (c *Contact) Dataset() *country.Dataset { return c.ds }

// Config returns the bound configuration
func (c *Contact) Config() *config.Config { return c.cfg }

// Validator returns the bound validator
func (c *Contact) Validator() *validate.Validator { return c.validator }

// Codec returns the bound codec
func (c *Contact) Codec() *codec.Codec { return c.codec }

// Assembler returns the address assembler
func (c *Contact) Assembler() assemble.Assembler { return c.assembler }
