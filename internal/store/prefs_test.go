// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shpixel/gallery/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func datedPhoto(id string, uploaded time.Time, taken *time.Time) models.Photo {
	return models.Photo{ID: id, Title: id, DateUploaded: uploaded, DateTaken: taken}
}

func ids(photos []models.Photo) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = p.ID
	}
	return out
}

func TestSortPhotos_NewestUsesDateTakenWithUploadFallback(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	photos := []models.Photo{
		// taken long before it was uploaded
		datedPhoto("old-scan", base.Add(48*time.Hour), timePtr(base.Add(-240*time.Hour))),
		datedPhoto("no-exif", base.Add(24*time.Hour), nil),
		datedPhoto("fresh", base, timePtr(base.Add(72*time.Hour))),
	}

	SortPhotos(photos, models.SortNewest)
	assert.Equal(t, []string{"fresh", "no-exif", "old-scan"}, ids(photos))
}

func TestSortPhotos_Oldest(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	photos := []models.Photo{
		datedPhoto("b", base.Add(time.Hour), nil),
		datedPhoto("a", base, nil),
	}

	SortPhotos(photos, models.SortOldest)
	assert.Equal(t, []string{"a", "b"}, ids(photos))
}

func TestSortPhotos_Name(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	photos := []models.Photo{
		datedPhoto("z", base, nil),
		datedPhoto("a", base, nil),
		datedPhoto("m", base, nil),
	}

	SortPhotos(photos, models.SortName)
	assert.Equal(t, []string{"a", "m", "z"}, ids(photos))
}

func TestSortPhotos_DateUploadedIgnoresDateTaken(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	photos := []models.Photo{
		datedPhoto("first-upload", base, timePtr(base.Add(100*time.Hour))),
		datedPhoto("second-upload", base.Add(time.Hour), nil),
	}

	SortPhotos(photos, models.SortDateUploaded)
	assert.Equal(t, []string{"second-upload", "first-upload"}, ids(photos))
}

func TestPrefs_Defaults(t *testing.T) {
	p := NewPrefs()

	assert.Equal(t, models.ThemeModeLight, p.Theme())
	assert.Equal(t, models.ViewModeGrid, p.ViewMode())
	assert.Equal(t, models.SortNewest, p.Sort())
}

func TestPrefs_Setters(t *testing.T) {
	p := NewPrefs()

	p.SetTheme(models.ThemeModeDark)
	p.SetViewMode(models.ViewModeMasonry)
	p.SetSort(models.SortName)

	assert.Equal(t, models.ThemeModeDark, p.Theme())
	assert.Equal(t, models.ViewModeMasonry, p.ViewMode())
	assert.Equal(t, models.SortName, p.Sort())
}
