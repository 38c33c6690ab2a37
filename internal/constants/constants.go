package constants

import "time"

// Endpoint suffixes appended to the store base. These must match the server
// routes byte for byte.
const (
	MarkFind       = "Mark/find"
	MarkFindBound  = "Mark/findBound"
	MarkMulti      = "Mark/multi"
	MarkGet        = "Mark/get"
	MarkPost       = "Mark/post"
	MarkDelete     = "Mark/delete"
	MarkTypes      = "Mark/types"
	MarkTypesExec  = "Mark/typesExec"
	HeatmapFind    = "Heatmap/find"
	HeatmapTypes   = "Heatmap/types"
	HeatmapGet     = "Heatmap/get"
	HeatmapPost    = "Heatmap/post"
	HeatmapDelete  = "Heatmap/delete"
	HeatmapFields  = "Heatmap/threshold"
	EditPost       = "HeatmapEdit/post"
	EditUpdate     = "HeatmapEdit/update"
	EditFind       = "HeatmapEdit/find"
	EditDelete     = "HeatmapEdit/delete"
	OverlayFind    = "Overlay/find"
	OverlayGet     = "Overlay/get"
	SlideFind      = "Slide/find"
	SlideGet       = "Slide/get"
	TemplateFind   = "Template/find"
	TemplateGet    = "Template/get"
	LogPost        = "Log/post"
	ConfigByName   = "Configuration/getConfigByName"
	CollectionPost = "/post"
	CollectionEdit = "/update"
	CollectionDrop = "/delete"
)

// HTTP methods. MethodUpdate is a non-standard token the store server
// routes to its update handlers.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodDelete = "DELETE"
	MethodUpdate = "UPDATE"
)

// Header values.
const (
	// JSONContentType is sent with every body-bearing request.
	JSONContentType = "application/json; charset=utf-8"

	// AcceptJSON is sent with every request.
	AcceptJSON = "application/json"

	// DefaultUserAgent identifies the library.
	DefaultUserAgent = "castore-go/1.0"
)

// DefaultHTTPTimeout is the default timeout used by the CLI.
const DefaultHTTPTimeout = 30 * time.Second

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// CLI defaults.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".castore"

	// ConfigFileName is the CLI config file name without extension.
	ConfigFileName = "config"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "CASTORE"

	// JSONIndentSize is the indentation used for JSON and YAML output.
	JSONIndentSize = 2

	// MaxCellWidth truncates nested values in table output.
	MaxCellWidth = 48
)

// Relay defaults.
const (
	// DefaultRelaySubject is the NATS subject the log relay listens on.
	DefaultRelaySubject = "castore.logs"

	// RelayIDField is stamped on relayed log records.
	RelayIDField = "relay_id"
)
