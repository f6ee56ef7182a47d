package models

// ViewMode selects the gallery layout.
type ViewMode string

const (
	ViewModeGrid    ViewMode = "grid"
	ViewModeMasonry ViewMode = "masonry"
)

// ThemeMode selects the colour scheme.
type ThemeMode string

const (
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// SortOption selects the ordering applied to photo listings.
type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortOldest       SortOption = "oldest"
	SortName         SortOption = "name"
	SortDateUploaded SortOption = "dateUploaded"
)
