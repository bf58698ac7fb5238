package domain

const unknownDescription = "Unknown"

// AppSettings represents all application configuration.
type AppSettings struct {
	Board   BoardSettings
	Catalog CatalogSettings
	Export  ExportSettings
}

// BoardSettings configures the board store.
type BoardSettings struct {
	// Seed fixes the shuffle sequence. Zero seeds from the clock.
	Seed int64
}

// CatalogSettings configures where known values come from.
type CatalogSettings struct {
	// Path is a TOML values file. Empty uses the built-in values.
	Path string
}

// IsBuiltin returns true if the built-in values are used.
func (c CatalogSettings) IsBuiltin() bool {
	return c.Path == ""
}

// ExportSettings configures snapshot files.
type ExportSettings struct {
	// Dir is the directory snapshot files are written to.
	Dir string
}

// DefaultAppSettings returns sensible default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Board:   BoardSettings{Seed: 0},
		Catalog: CatalogSettings{Path: ""},
		Export:  ExportSettings{Dir: "."},
	}
}
