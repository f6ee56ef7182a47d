package store

import (
	"sort"
	"sync"
	"time"

	"github.com/shpixel/gallery/models"
)

// Prefs holds presentation-only state: theme mode, gallery layout and the
// active sort option. It never affects entity identity, only derived ordering
// and rendering.
type Prefs struct {
	mu    sync.RWMutex
	theme models.ThemeMode
	view  models.ViewMode
	sort  models.SortOption
}

// NewPrefs returns preferences with the defaults: light theme, grid layout,
// newest-first ordering.
func NewPrefs() *Prefs {
	return &Prefs{
		theme: models.ThemeModeLight,
		view:  models.ViewModeGrid,
		sort:  models.SortNewest,
	}
}

func (p *Prefs) Theme() models.ThemeMode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

func (p *Prefs) SetTheme(mode models.ThemeMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = mode
}

func (p *Prefs) ViewMode() models.ViewMode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}

func (p *Prefs) SetViewMode(mode models.ViewMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = mode
}

func (p *Prefs) Sort() models.SortOption {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sort
}

func (p *Prefs) SetSort(option models.SortOption) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sort = option
}

// SortPhotos orders photos by the given option, in place. "newest" and
// "oldest" use the capture date when present, falling back to the upload
// date; "name" compares titles; "dateUploaded" ignores the capture date.
// The sort is stable so equal keys keep master-list order.
func SortPhotos(photos []models.Photo, option models.SortOption) {
	switch option {
	case models.SortOldest:
		sort.SliceStable(photos, func(i, j int) bool {
			return displayDate(photos[i]).Before(displayDate(photos[j]))
		})
	case models.SortName:
		sort.SliceStable(photos, func(i, j int) bool {
			return photos[i].Title < photos[j].Title
		})
	case models.SortDateUploaded:
		sort.SliceStable(photos, func(i, j int) bool {
			return photos[j].DateUploaded.Before(photos[i].DateUploaded)
		})
	default: // newest
		sort.SliceStable(photos, func(i, j int) bool {
			return displayDate(photos[j]).Before(displayDate(photos[i]))
		})
	}
}

func displayDate(p models.Photo) time.Time {
	if p.DateTaken != nil {
		return *p.DateTaken
	}
	return p.DateUploaded
}
