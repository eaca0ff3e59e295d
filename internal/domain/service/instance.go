package service

import (
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/metrics"
	"github.com/rs/zerolog"
)

// Options carries the process-wide settings the services are built with.
type Options struct {
	Location     *time.Location
	OffsetPolicy string

	// Parser defaults to the English when parser.
	Parser DateParser

	// Cache is optional.
	Cache contract.CredentialCache

	Metrics  contract.Metrics
	Logger   zerolog.Logger
	Now      func() time.Time
	Delivery DeliveryOptions
}

type Instance struct {
	Message    *messageService
	Credential *credentialGate
	Delivery   *deliveryScheduler
	Normalizer *Normalizer
}

func NewInstance(dm contract.DataManager, sender contract.Sender, opts Options) *Instance {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.OffsetPolicy == "" {
		opts.OffsetPolicy = domain.OffsetAtTarget
	}
	if opts.Parser == nil {
		opts.Parser = NewWhenParser()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Nop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	normalizer := NewNormalizer(opts.Location, opts.OffsetPolicy, opts.Now)
	extractor := newDateExtractor(opts.Parser, opts.Location, opts.Now)
	gate := newCredentialGate(dm, opts.Cache, opts.Logger.With().Str("service", "credential").Logger())

	return &Instance{
		Message: newMessageService(dm, extractor, normalizer, gate, opts.Metrics,
			opts.Logger.With().Str("service", "message").Logger(), opts.Now),
		Credential: gate,
		Delivery: newDeliveryScheduler(dm, gate, sender, normalizer, opts.Metrics,
			opts.Logger.With().Str("service", "delivery").Logger(), opts.Now, opts.Delivery),
		Normalizer: normalizer,
	}
}
