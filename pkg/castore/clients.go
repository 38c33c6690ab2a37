package castore

import (
	"context"
)

// MarksClient defines operations for marks.
type MarksClient interface {
	Find(ctx context.Context, params MarkFindParams) (*Result, error)
	FindSpatial(ctx context.Context, params MarkSpatialParams) (*Result, error)
	GetByIDs(ctx context.Context, ids []string, params MarkMultiParams) (*Result, error)
	Get(ctx context.Context, id string) (*Result, error)
	Add(ctx context.Context, record interface{}) (*Result, error)
	Delete(ctx context.Context, id, slide string) (*Result, error)
	FindTypes(ctx context.Context, slide, name string) (*Result, error)
}

// HeatmapsClient defines operations for heatmaps.
type HeatmapsClient interface {
	Find(ctx context.Context, slide, name string) (*Result, error)
	FindTypes(ctx context.Context, slide, name string) (*Result, error)
	Get(ctx context.Context, slide, name string) (*Result, error)
	Add(ctx context.Context, record interface{}) (*Result, error)
	Delete(ctx context.Context, id, slide string) (*Result, error)
	UpdateFields(ctx context.Context, params HeatmapFieldsParams) (*Result, error)
}

// HeatmapEditsClient defines operations for heatmap edits.
type HeatmapEditsClient interface {
	Add(ctx context.Context, record interface{}) (*Result, error)
	Update(ctx context.Context, params HeatmapEditParams) (*Result, error)
	Find(ctx context.Context, user, slide, name string) (*Result, error)
	Delete(ctx context.Context, user, slide, name string) (*Result, error)
}

// OverlaysClient defines operations for overlays.
type OverlaysClient interface {
	Find(ctx context.Context, name, slide string) (*Result, error)
	Get(ctx context.Context, id string) (*Result, error)
}

// SlidesClient defines operations for slides.
type SlidesClient interface {
	Find(ctx context.Context, params SlideFindParams) (*Result, error)
	Get(ctx context.Context, id string) (*Result, error)
}

// TemplatesClient defines operations for templates.
type TemplatesClient interface {
	Find(ctx context.Context, name, templateType string) (*Result, error)
	Get(ctx context.Context, id string) (*Result, error)
}

// LogsClient defines operations for log records.
type LogsClient interface {
	Add(ctx context.Context, record interface{}) (*Result, error)
}

// ConfigurationsClient defines operations for named configurations.
type ConfigurationsClient interface {
	GetByName(ctx context.Context, name string) (*Result, error)
}

// CollectionClient targets any server-defined collection by type name.
type CollectionClient interface {
	Post(ctx context.Context, collection string, query *Query, data interface{}) (*Result, error)
	Update(ctx context.Context, collection string, query *Query, data interface{}) (*Result, error)
	Delete(ctx context.Context, collection string, query *Query) (*Result, error)
}

// AnnotationClients provides access to annotation resource clients.
type AnnotationClients interface {
	Marks() MarksClient
	Heatmaps() HeatmapsClient
	HeatmapEdits() HeatmapEditsClient
	Overlays() OverlaysClient
}

// CatalogClients provides access to slide and template resource clients.
type CatalogClients interface {
	Slides() SlidesClient
	Templates() TemplatesClient
}

// SystemClients provides access to log and configuration resource clients.
type SystemClients interface {
	Logs() LogsClient
	Configurations() ConfigurationsClient
}

// Store is the full store surface.
type Store interface {
	// Composite interfaces for related resource groups
	AnnotationClients
	CatalogClients
	SystemClients
	CollectionClient

	// Base returns the configured base URL or path.
	Base() string
}
