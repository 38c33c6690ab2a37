// Package schema provides built-in record types and validators for the
// store's mark, heatmap, slide and template collections.
package schema

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// Image identifies the slide an annotation belongs to.
type Image struct {
	Slide    string `json:"slide"`
	Specimen string `json:"specimen,omitempty"`
	Study    string `json:"study,omitempty"`
}

// Analysis identifies the execution that produced an annotation.
type Analysis struct {
	ExecutionID string `json:"execution_id"`
	Source      string `json:"source,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Provenance records where an annotation came from.
type Provenance struct {
	Image    Image    `json:"image"`
	Analysis Analysis `json:"analysis"`
}

// Validate checks the provenance fields every annotation needs.
func (p Provenance) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Image),
		validation.Field(&p.Analysis),
	)
}

// Validate checks that the slide is named.
func (i Image) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Slide, validation.Required),
	)
}

// Validate checks that the execution is named.
func (a Analysis) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ExecutionID, validation.Required),
	)
}

// Mark is a single annotation.
type Mark struct {
	ID         string                 `json:"_id,omitempty"`
	Provenance Provenance             `json:"provenance"`
	Geometries interface{}            `json:"geometries"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Footprint  float64                `json:"footprint,omitempty"`
}

// Validate implements validation.Validatable.
func (m Mark) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Provenance),
		validation.Field(&m.Geometries, validation.Required),
	)
}

// Heatmap is a computed overlay for a slide.
type Heatmap struct {
	ID         string      `json:"_id,omitempty"`
	Provenance Provenance  `json:"provenance"`
	Data       interface{} `json:"data"`
}

// Validate implements validation.Validatable.
func (h Heatmap) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Provenance),
		validation.Field(&h.Data, validation.Required),
	)
}

// Slide is an image in the catalog.
type Slide struct {
	ID       string  `json:"_id,omitempty"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Specimen string  `json:"specimen,omitempty"`
	Study    string  `json:"study,omitempty"`
	MPP      float64 `json:"mpp,omitempty"`
}

// Validate implements validation.Validatable.
func (s Slide) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Location, validation.Required),
		validation.Field(&s.MPP, validation.Min(0.0)),
	)
}

// Template describes a form used to label annotations.
type Template struct {
	ID         string                 `json:"_id,omitempty"`
	Name       string                 `json:"name"`
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Validate implements validation.Validatable.
func (t Template) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Type, validation.Required),
	)
}

// For returns a validator that decodes a record into T and validates it.
func For[T validation.Validatable]() castore.Validator {
	return func(record castore.Record) error {
		var value T

		err := castore.Decode(map[string]interface{}(record), &value)
		if err != nil {
			return fmt.Errorf("%w: %w", castore.ErrRecordRejected, err)
		}

		return value.Validate()
	}
}

// Default returns a registry with the built-in validators.
func Default() castore.Registry {
	return castore.NewRegistry(map[castore.EntityType]castore.Validator{
		castore.EntityMark:     For[Mark](),
		castore.EntityHeatmap:  For[Heatmap](),
		castore.EntitySlide:    For[Slide](),
		castore.EntityTemplate: For[Template](),
	})
}

// ValidateAll validates every record against the registry entry for tag and
// returns the failures as a single multierror, or nil.
func ValidateAll(registry castore.Registry, tag castore.EntityType, records []castore.Record) error {
	var result *multierror.Error

	for i, record := range records {
		err := registry.Validate(tag, record)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("record %d: %w", i, err))
		}
	}

	return result.ErrorOrNil()
}
