package types

import "errors"

// Preferences validation errors.
var (
	ErrItemsPerPageInvalid = errors.New("items per page must be positive")
)

// Preferences holds the global UI preferences consumed by the query and
// presentation call sites. Preferences is a plain value passed by the
// caller; there is no process-wide settings singleton.
type Preferences struct {
	ItemsPerPage      int    `yaml:"items_per_page" json:"items_per_page" mapstructure:"items_per_page"`
	DefaultSortColumn string `yaml:"default_sort_column" json:"default_sort_column" mapstructure:"default_sort_column"`
	DefaultSortDesc   bool   `yaml:"default_sort_desc" json:"default_sort_desc" mapstructure:"default_sort_desc"`
	CompactMode       bool   `yaml:"compact_mode" json:"compact_mode" mapstructure:"compact_mode"`
}

// DefaultPreferences returns the preferences used when no configuration
// is present.
func DefaultPreferences() Preferences {
	return Preferences{
		ItemsPerPage:      25,
		DefaultSortColumn: "",
		DefaultSortDesc:   false,
		CompactMode:       false,
	}
}

// Validate checks that the preferences are well-formed.
func (p Preferences) Validate() error {
	if p.ItemsPerPage <= 0 {
		return ErrItemsPerPageInvalid
	}
	return nil
}
