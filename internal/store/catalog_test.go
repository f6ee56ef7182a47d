// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shpixel/gallery/models"
)

func strPtr(s string) *string { return &s }

func testPhoto(id string) models.Photo {
	return models.Photo{
		ID:           id,
		Src:          "/media/photos/" + id + ".jpg",
		Title:        "Photo " + id,
		DateUploaded: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testAlbum(id string, photoIDs ...string) models.Album {
	return models.Album{
		ID:          id,
		Name:        "Album " + id,
		DateCreated: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		PhotoIDs:    photoIDs,
	}
}

func seededCatalog(t *testing.T, photoCount int) *Catalog {
	t.Helper()
	c := NewCatalog()
	for i := 1; i <= photoCount; i++ {
		require.NoError(t, c.AddPhoto(testPhoto(fmt.Sprintf("p%d", i))))
	}
	return c
}

// ── photos ───────────────────────────────────────────────────────────────────

func TestCatalog_AddPhoto_DuplicateID(t *testing.T) {
	c := seededCatalog(t, 1)

	err := c.AddPhoto(testPhoto("p1"))
	assert.ErrorIs(t, err, ErrPhotoExists)
	assert.Len(t, c.Photos(), 1)
}

func TestCatalog_RemovePhoto_Missing(t *testing.T) {
	c := seededCatalog(t, 2)

	c.RemovePhoto("nope")
	assert.Len(t, c.Photos(), 2)
}

func TestCatalog_ToggleFavorite_DoubleToggleRestoresState(t *testing.T) {
	c := seededCatalog(t, 1)

	c.ToggleFavorite("p1")
	p, ok := c.Photo("p1")
	require.True(t, ok)
	assert.True(t, p.Favorite)

	c.ToggleFavorite("p1")
	p, _ = c.Photo("p1")
	assert.False(t, p.Favorite)
}

func TestCatalog_ToggleFavorite_MissingIsNoop(t *testing.T) {
	c := seededCatalog(t, 1)
	c.ToggleFavorite("ghost")

	p, _ := c.Photo("p1")
	assert.False(t, p.Favorite)
}

func TestCatalog_UpdatePhoto(t *testing.T) {
	c := seededCatalog(t, 1)

	updated := testPhoto("p1")
	updated.Title = "Renamed"
	updated.Tags = []string{"sea"}
	assert.True(t, c.UpdatePhoto(updated))

	p, _ := c.Photo("p1")
	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, []string{"sea"}, p.Tags)

	assert.False(t, c.UpdatePhoto(testPhoto("ghost")))
}

func TestCatalog_Photo_ReturnsCopy(t *testing.T) {
	c := seededCatalog(t, 1)

	p, _ := c.Photo("p1")
	p.Title = "mutated locally"

	orig, _ := c.Photo("p1")
	assert.Equal(t, "Photo p1", orig.Title)
}

// ── referential integrity ────────────────────────────────────────────────────

func TestCatalog_RemovePhoto_ScrubsAlbumReferences(t *testing.T) {
	c := seededCatalog(t, 3)
	require.NoError(t, c.AddAlbum(testAlbum("a1", "p1", "p2")))

	album := testAlbum("a2", "p2", "p3")
	album.CoverPhotoID = strPtr("p2")
	require.NoError(t, c.AddAlbum(album))

	c.RemovePhoto("p2")

	a1, _ := c.Album("a1")
	assert.Equal(t, []string{"p1"}, a1.PhotoIDs)

	a2, _ := c.Album("a2")
	assert.Equal(t, []string{"p3"}, a2.PhotoIDs)
	assert.Nil(t, a2.CoverPhotoID, "cover pointing at the removed photo must be cleared")
}

func TestCatalog_RemoveAlbum_DoesNotCascadeToPhotos(t *testing.T) {
	c := seededCatalog(t, 2)
	require.NoError(t, c.AddAlbum(testAlbum("a1", "p1", "p2")))

	c.RemoveAlbum("a1")

	assert.Empty(t, c.Albums())
	assert.Len(t, c.Photos(), 2)
}

func TestCatalog_AddPhotoToAlbum_Idempotent(t *testing.T) {
	c := seededCatalog(t, 1)
	require.NoError(t, c.AddAlbum(testAlbum("a1")))

	c.AddPhotoToAlbum("p1", "a1")
	c.AddPhotoToAlbum("p1", "a1")

	a, _ := c.Album("a1")
	assert.Equal(t, []string{"p1"}, a.PhotoIDs)
}

func TestCatalog_AddPhotoToAlbum_UnknownIDsAreNoops(t *testing.T) {
	c := seededCatalog(t, 1)
	require.NoError(t, c.AddAlbum(testAlbum("a1")))

	c.AddPhotoToAlbum("ghost", "a1")
	c.AddPhotoToAlbum("p1", "ghost")

	a, _ := c.Album("a1")
	assert.Empty(t, a.PhotoIDs)
}

func TestCatalog_RemovePhotoFromAlbum(t *testing.T) {
	c := seededCatalog(t, 2)
	require.NoError(t, c.AddAlbum(testAlbum("a1", "p1", "p2")))

	c.RemovePhotoFromAlbum("p1", "a1")

	a, _ := c.Album("a1")
	assert.Equal(t, []string{"p2"}, a.PhotoIDs)

	// removing again is a silent no-op
	c.RemovePhotoFromAlbum("p1", "a1")
	a, _ = c.Album("a1")
	assert.Equal(t, []string{"p2"}, a.PhotoIDs)
}

// ── queries ──────────────────────────────────────────────────────────────────

func TestCatalog_PhotosByAlbum_MasterListOrder(t *testing.T) {
	c := seededCatalog(t, 3)
	// membership listed out of master order on purpose
	require.NoError(t, c.AddAlbum(testAlbum("a1", "p3", "p1")))

	got := c.PhotosByAlbum("a1")
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)
}

func TestCatalog_FavoritePhotos_InsertionOrder(t *testing.T) {
	c := seededCatalog(t, 3)
	c.ToggleFavorite("p3")
	c.ToggleFavorite("p1")

	got := c.FavoritePhotos()
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)
}

func TestCatalog_PhotosByTag_ExactMatch(t *testing.T) {
	c := NewCatalog()
	p1 := testPhoto("p1")
	p1.Tags = []string{"Ocean", "sunset"}
	p2 := testPhoto("p2")
	p2.Tags = []string{"ocean"}
	require.NoError(t, c.AddPhoto(p1))
	require.NoError(t, c.AddPhoto(p2))

	got := c.PhotosByTag("ocean")
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestCatalog_SearchPhotos(t *testing.T) {
	c := NewCatalog()
	p1 := testPhoto("p1")
	p1.Title = "Ocean at dawn"
	p2 := testPhoto("p2")
	p2.Description = strPtr("deep OCEAN dive")
	p3 := testPhoto("p3")
	p3.Tags = []string{"oceanic"}
	p4 := testPhoto("p4")
	require.NoError(t, c.AddPhoto(p1))
	require.NoError(t, c.AddPhoto(p2))
	require.NoError(t, c.AddPhoto(p3))
	require.NoError(t, c.AddPhoto(p4))

	got := c.SearchPhotos("ocean")
	require.Len(t, got, 3)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
	assert.Equal(t, "p3", got[2].ID)
}

func TestCatalog_SearchPhotos_EmptyQuery(t *testing.T) {
	c := seededCatalog(t, 2)
	assert.Empty(t, c.SearchPhotos(""))
	assert.Empty(t, c.SearchPhotos("   "))
}

func TestCatalog_Tags_SortedDistinct(t *testing.T) {
	c := NewCatalog()
	p1 := testPhoto("p1")
	p1.Tags = []string{"sunset", "beach"}
	p2 := testPhoto("p2")
	p2.Tags = []string{"beach", "alps"}
	require.NoError(t, c.AddPhoto(p1))
	require.NoError(t, c.AddPhoto(p2))

	assert.Equal(t, []string{"alps", "beach", "sunset"}, c.Tags())
}

// ── cover resolution ─────────────────────────────────────────────────────────

func TestCatalog_ResolveCover(t *testing.T) {
	c := seededCatalog(t, 3)

	explicit := testAlbum("a1", "p1", "p2")
	explicit.CoverPhotoID = strPtr("p2")
	require.NoError(t, c.AddAlbum(explicit))

	fallback := testAlbum("a2", "p3", "p1")
	require.NoError(t, c.AddAlbum(fallback))

	empty := testAlbum("a3")
	require.NoError(t, c.AddAlbum(empty))

	cover, ok := c.ResolveCover("a1")
	require.True(t, ok)
	assert.Equal(t, "p2", cover.ID)

	cover, ok = c.ResolveCover("a2")
	require.True(t, ok)
	assert.Equal(t, "p3", cover.ID, "first member is the implicit cover")

	_, ok = c.ResolveCover("a3")
	assert.False(t, ok)

	_, ok = c.ResolveCover("ghost")
	assert.False(t, ok)
}

// ── bulk replacement ─────────────────────────────────────────────────────────

func TestCatalog_ReplaceCollections(t *testing.T) {
	c := seededCatalog(t, 2)
	require.NoError(t, c.AddAlbum(testAlbum("a1", "p1")))

	c.ReplacePhotos([]models.Photo{testPhoto("x1")})
	c.ReplaceAlbums([]models.Album{testAlbum("b1", "x1")})

	photos := c.Photos()
	require.Len(t, photos, 1)
	assert.Equal(t, "x1", photos[0].ID)

	albums := c.Albums()
	require.Len(t, albums, 1)
	assert.Equal(t, "b1", albums[0].ID)
}

func TestCatalog_AddAlbum_DuplicateID(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddAlbum(testAlbum("a1")))

	err := c.AddAlbum(testAlbum("a1"))
	assert.ErrorIs(t, err, ErrAlbumExists)
}
