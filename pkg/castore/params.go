package castore

// MarkFindParams holds the optional filters for Marks().Find.
// Zero values are omitted from the request.
type MarkFindParams struct {
	Slide     string
	Name      string
	Footprint float64
	Source    string
	X0        float64
	X1        float64
	Y0        float64
	Y1        float64
}

// MarkSpatialParams holds the bounding box and filters for Marks().FindSpatial.
// The bounds are always sent, including zero.
type MarkSpatialParams struct {
	X0    float64
	Y0    float64
	X1    float64
	Y1    float64
	Name  string
	Slide string
	Key   string
}

// MarkMultiParams holds the filters for Marks().GetByIDs. Slide is required.
type MarkMultiParams struct {
	Slide     string
	Source    string
	Footprint float64
	X0        float64
	X1        float64
	Y0        float64
	Y1        float64
}

// HeatmapFieldsParams holds the arguments for Heatmaps().UpdateFields.
// Fields and Setting are sent as-is when they are strings and as JSON
// otherwise.
type HeatmapFieldsParams struct {
	Slide   string
	Name    string
	Fields  interface{}
	Setting interface{}
}

// HeatmapEditParams holds the arguments for HeatmapEdits().Update.
// Data is sent as-is when it is a string and as JSON otherwise.
type HeatmapEditParams struct {
	User  string
	Slide string
	Name  string
	Data  interface{}
}

// SlideFindParams holds the optional filters for Slides().Find.
type SlideFindParams struct {
	Slide    string
	Specimen string
	Study    string
	Location string
}
