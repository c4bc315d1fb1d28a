package config

// CatalogEntry pairs an asset identifier with its on-disk path.
type CatalogEntry struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// CatalogConfig holds the ordered map and skin catalogs. Order matters: the
// selection carousels cycle through these lists by index.
type CatalogConfig struct {
	Maps  []CatalogEntry `yaml:"maps"`
	Skins []CatalogEntry `yaml:"skins"`

	DefaultMap  string `yaml:"defaultMap"`
	DefaultSkin string `yaml:"defaultSkin"`
}

// Catalog is the global asset catalog configuration
var Catalog CatalogConfig

func init() {
	Catalog = CatalogConfig{
		Maps: []CatalogEntry{
			{ID: "nyc", Path: "images/nyc.bmp"},
			{ID: "sydney", Path: "images/sydney.bmp"},
			{ID: "london", Path: "images/london.bmp"},
			{ID: "pisa", Path: "images/pisa.bmp"},
			{ID: "moai", Path: "images/moai.bmp"},
			{ID: "pjatk", Path: "images/pjatk.bmp"},
		},
		Skins: []CatalogEntry{
			{ID: "dziekan", Path: "skins/dziekan.bmp"},
			{ID: "rektor", Path: "skins/rektor.bmp"},
		},
		DefaultMap:  "london",
		DefaultSkin: "dziekan",
	}
}

// MapPath resolves a map identifier to its asset path. Unknown identifiers
// fall back to the first catalog entry.
func (c CatalogConfig) MapPath(id string) string {
	for _, e := range c.Maps {
		if e.ID == id {
			return e.Path
		}
	}
	return c.Maps[0].Path
}

// SkinPath resolves a skin identifier to its asset path.
func (c CatalogConfig) SkinPath(id string) string {
	for _, e := range c.Skins {
		if e.ID == id {
			return e.Path
		}
	}
	return c.Skins[0].Path
}

// MapIndex returns the carousel index for a map identifier, or 0 if unknown.
func (c CatalogConfig) MapIndex(id string) int {
	for i, e := range c.Maps {
		if e.ID == id {
			return i
		}
	}
	return 0
}

// SkinIndex returns the carousel index for a skin identifier, or 0 if unknown.
func (c CatalogConfig) SkinIndex(id string) int {
	for i, e := range c.Skins {
		if e.ID == id {
			return i
		}
	}
	return 0
}

// MapIDs returns the ordered map identifiers.
func (c CatalogConfig) MapIDs() []string {
	ids := make([]string, len(c.Maps))
	for i, e := range c.Maps {
		ids[i] = e.ID
	}
	return ids
}

// SkinIDs returns the ordered skin identifiers.
func (c CatalogConfig) SkinIDs() []string {
	ids := make([]string, len(c.Skins))
	for i, e := range c.Skins {
		ids[i] = e.ID
	}
	return ids
}
