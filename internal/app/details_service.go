package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/property-manager/internal/app/fanout"
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/details"
	"github.com/jsamuelsen11/property-manager/internal/ports"
)

// Compile-time check that DetailsService implements ports.PropertyDetailsService.
var _ ports.PropertyDetailsService = (*DetailsService)(nil)

// DetailsService composes the property detail view from the entity ports.
// Pass it the validating services so every call is checked.
type DetailsService struct {
	properties ports.PropertyRepository
	owners     ports.OwnerRepository
	images     ports.PropertyImageRepository
	traces     ports.PropertyTraceRepository
	workers    int
	logger     *slog.Logger
}

// NewDetailsService creates a DetailsService. workers bounds how many of
// the owner, image and trace reads run at once.
func NewDetailsService(
	properties ports.PropertyRepository,
	owners ports.OwnerRepository,
	images ports.PropertyImageRepository,
	traces ports.PropertyTraceRepository,
	workers int,
	logger *slog.Logger,
) *DetailsService {
	return &DetailsService{
		properties: properties,
		owners:     owners,
		images:     images,
		traces:     traces,
		workers:    workers,
		logger:     nopLogger(logger),
	}
}

// section loads one part of the details into d.
type section struct {
	name string
	load func(ctx context.Context, d *details.PropertyDetails) *domain.Error
}

// Get loads the property, then its owner, images and traces concurrently.
// Only the property read can fail the Result.
func (s *DetailsService) Get(ctx context.Context, id string) domain.Result[*details.PropertyDetails] {
	prop, err := s.properties.GetByID(ctx, id).Unwrap()
	if err != nil {
		return domain.Fail[*details.PropertyDetails](asDomainError(err))
	}
	if prop == nil {
		return domain.Fail[*details.PropertyDetails](domain.UnknownError())
	}

	d := &details.PropertyDetails{Property: *prop}
	sections := []section{
		{name: details.SectionOwner, load: s.loadOwner},
		{name: details.SectionImages, load: s.loadImages},
		{name: details.SectionTraces, load: s.loadTraces},
	}

	results := fanout.Run(ctx, s.workers, sections, func(ctx context.Context, sec section) (struct{}, error) {
		if err := sec.load(ctx, d); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	for i, r := range results {
		if r.Err == nil {
			continue
		}
		werr := asDomainError(r.Err)
		s.logger.WarnContext(ctx, "property details section unavailable",
			slog.String("property_id", id),
			slog.String("section", sections[i].name),
			slog.String("code", werr.Code),
		)
		d.Warnings = append(d.Warnings, details.Warning{Section: sections[i].name, Error: werr})
	}

	return domain.OK(d)
}

func (s *DetailsService) loadOwner(ctx context.Context, d *details.PropertyDetails) *domain.Error {
	res := s.owners.GetByID(ctx, d.Property.OwnerID)
	o, ok := res.Data()
	if !ok {
		return res.Err()
	}
	d.Owner = o
	return nil
}

func (s *DetailsService) loadImages(ctx context.Context, d *details.PropertyDetails) *domain.Error {
	res := s.images.GetByProperty(ctx, d.Property.ID)
	images, ok := res.Data()
	if !ok {
		return res.Err()
	}
	d.Images = images
	return nil
}

func (s *DetailsService) loadTraces(ctx context.Context, d *details.PropertyDetails) *domain.Error {
	res := s.traces.GetByProperty(ctx, d.Property.ID)
	traces, ok := res.Data()
	if !ok {
		return res.Err()
	}
	d.Traces = traces
	return nil
}

// asDomainError recovers the envelope from an error. Anything else, such
// as a context error recorded for a section that never ran, becomes
// UNKNOWN_ERROR classified as unavailable.
func asDomainError(err error) *domain.Error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr
	}
	return domain.NewError(domain.ErrUnavailable, domain.CodeUnknown, err.Error())
}
