// Package details defines the composed read model of a single property: the
// property plus its owner, images and traces.
package details

import (
	"github.com/jsamuelsen11/property-manager/internal/domain"
	"github.com/jsamuelsen11/property-manager/internal/domain/image"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
	"github.com/jsamuelsen11/property-manager/internal/domain/property"
	"github.com/jsamuelsen11/property-manager/internal/domain/trace"
)

// Section names used in warnings.
const (
	SectionOwner  = "owner"
	SectionImages = "images"
	SectionTraces = "traces"
)

// PropertyDetails is a property with its related records. A section that
// could not be loaded is left empty and reported in Warnings.
type PropertyDetails struct {
	Property property.Property
	Owner    *owner.Owner
	Images   []image.Image
	Traces   []trace.Trace
	Warnings []Warning
}

// Warning records why one section is missing.
type Warning struct {
	Section string
	Error   *domain.Error
}

// Complete reports whether every section loaded.
func (d *PropertyDetails) Complete() bool {
	return len(d.Warnings) == 0
}
