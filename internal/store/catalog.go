// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/shpixel/gallery/models"
)

// Catalog is the in-memory source of truth for photos and albums. Every read
// and write in the application goes through it.
//
// All operations take the catalog mutex and operate on a consistent snapshot;
// reads return deep copies so callers never alias internal state. Master-list
// order (insertion order) is preserved and is the order every query returns
// photos in.
//
// Duplicate-id policy: AddPhoto and AddAlbum reject a duplicate id with
// ErrPhotoExists / ErrAlbumExists. Operations referencing a missing id are
// silent no-ops, matching the referential no-op contract of the rest of the
// store.
type Catalog struct {
	mu     sync.RWMutex
	photos []models.Photo
	albums []models.Album
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// AddPhoto appends photo to the master list.
// Returns ErrPhotoExists if a photo with the same id is already present.
func (c *Catalog) AddPhoto(photo models.Photo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.photoIndex(photo.ID) >= 0 {
		return ErrPhotoExists
	}
	c.photos = append(c.photos, photo.Clone())
	return nil
}

// RemovePhoto deletes the photo with the given id and scrubs the id from
// every album's membership list and cover reference. Missing id is a no-op.
func (c *Catalog) RemovePhoto(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.photoIndex(id)
	if idx < 0 {
		return
	}
	c.photos = append(c.photos[:idx], c.photos[idx+1:]...)

	for i := range c.albums {
		album := &c.albums[i]
		for j, pid := range album.PhotoIDs {
			if pid == id {
				album.PhotoIDs = append(album.PhotoIDs[:j], album.PhotoIDs[j+1:]...)
				break
			}
		}
		if album.CoverPhotoID != nil && *album.CoverPhotoID == id {
			album.CoverPhotoID = nil
		}
	}
}

// UpdatePhoto replaces the mutable attributes (title, description, tags, alt)
// of the photo with the given id. Reports whether the photo was found.
func (c *Catalog) UpdatePhoto(photo models.Photo) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.photoIndex(photo.ID)
	if idx < 0 {
		return false
	}
	current := &c.photos[idx]
	current.Title = photo.Title
	current.Alt = photo.Alt
	current.Description = photo.Clone().Description
	current.Tags = append([]string(nil), photo.Tags...)
	return true
}

// ToggleFavorite flips the favorite flag on the matching photo.
// Missing id is a no-op.
func (c *Catalog) ToggleFavorite(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.photoIndex(id); idx >= 0 {
		c.photos[idx].Favorite = !c.photos[idx].Favorite
	}
}

// AddAlbum appends album. Returns ErrAlbumExists on a duplicate id.
func (c *Catalog) AddAlbum(album models.Album) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.albumIndex(album.ID) >= 0 {
		return ErrAlbumExists
	}
	c.albums = append(c.albums, album.Clone())
	return nil
}

// RemoveAlbum deletes the album with the given id. Member photos are not
// touched. Missing id is a no-op.
func (c *Catalog) RemoveAlbum(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.albumIndex(id); idx >= 0 {
		c.albums = append(c.albums[:idx], c.albums[idx+1:]...)
	}
}

// AddPhotoToAlbum appends photoID to the album's membership list if it is not
// already present. Idempotent; missing album is a no-op. The photo id itself
// is not validated against the photo list: membership of not-yet-synced
// photos is allowed.
func (c *Catalog) AddPhotoToAlbum(photoID, albumID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.albumIndex(albumID)
	if idx < 0 {
		return
	}
	if c.albums[idx].Contains(photoID) {
		return
	}
	c.albums[idx].PhotoIDs = append(c.albums[idx].PhotoIDs, photoID)
}

// RemovePhotoFromAlbum removes photoID from the album's membership list.
// Missing album or non-member id is a no-op.
func (c *Catalog) RemovePhotoFromAlbum(photoID, albumID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.albumIndex(albumID)
	if idx < 0 {
		return
	}
	ids := c.albums[idx].PhotoIDs
	for i, pid := range ids {
		if pid == photoID {
			c.albums[idx].PhotoIDs = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// Photo returns a copy of the photo with the given id.
func (c *Catalog) Photo(id string) (models.Photo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx := c.photoIndex(id); idx >= 0 {
		return c.photos[idx].Clone(), true
	}
	return models.Photo{}, false
}

// Album returns a copy of the album with the given id.
func (c *Catalog) Album(id string) (models.Album, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx := c.albumIndex(id); idx >= 0 {
		return c.albums[idx].Clone(), true
	}
	return models.Album{}, false
}

// Photos returns a copy of the master photo list in insertion order.
func (c *Catalog) Photos() []models.Photo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clonePhotos(c.photos)
}

// Albums returns a copy of the album list in insertion order.
func (c *Catalog) Albums() []models.Album {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Album, 0, len(c.albums))
	for _, a := range c.albums {
		out = append(out, a.Clone())
	}
	return out
}

// PhotosByAlbum returns the member photos of the album in master-list order,
// not PhotoIDs insertion order. Unknown album yields an empty slice; dangling
// member ids are skipped.
func (c *Catalog) PhotosByAlbum(albumID string) []models.Photo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.albumIndex(albumID)
	if idx < 0 {
		return []models.Photo{}
	}
	members := make(map[string]struct{}, len(c.albums[idx].PhotoIDs))
	for _, id := range c.albums[idx].PhotoIDs {
		members[id] = struct{}{}
	}

	out := make([]models.Photo, 0, len(members))
	for _, p := range c.photos {
		if _, ok := members[p.ID]; ok {
			out = append(out, p.Clone())
		}
	}
	return out
}

// FavoritePhotos returns all photos with the favorite flag set, in
// master-list order.
func (c *Catalog) FavoritePhotos() []models.Photo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Photo, 0)
	for _, p := range c.photos {
		if p.Favorite {
			out = append(out, p.Clone())
		}
	}
	return out
}

// PhotosByTag returns all photos whose tag list contains an exact,
// case-sensitive match for tag.
func (c *Catalog) PhotosByTag(tag string) []models.Photo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Photo, 0)
	for _, p := range c.photos {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p.Clone())
				break
			}
		}
	}
	return out
}

// SearchPhotos returns photos whose title, description or any tag contains
// query as a case-insensitive substring. An empty query matches nothing.
func (c *Catalog) SearchPhotos(query string) []models.Photo {
	out := make([]models.Photo, 0)
	if query == "" {
		return out
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(query)
	for _, p := range c.photos {
		if photoMatches(p, needle) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Tags returns the distinct tags across all photos, sorted alphabetically.
func (c *Catalog) Tags() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range c.photos {
		for _, t := range p.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// ResolveCover resolves the cover photo for the album: the explicit cover if
// it references an existing photo, otherwise the first member (in PhotoIDs
// order) that resolves, otherwise no cover.
func (c *Catalog) ResolveCover(albumID string) (models.Photo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.albumIndex(albumID)
	if idx < 0 {
		return models.Photo{}, false
	}
	album := c.albums[idx]

	if album.CoverPhotoID != nil {
		if pIdx := c.photoIndex(*album.CoverPhotoID); pIdx >= 0 {
			return c.photos[pIdx].Clone(), true
		}
	}
	for _, pid := range album.PhotoIDs {
		if pIdx := c.photoIndex(pid); pIdx >= 0 {
			return c.photos[pIdx].Clone(), true
		}
	}
	return models.Photo{}, false
}

// ReplacePhotos swaps the whole photo list. Used when priming the catalog
// from the local cache or a remote refresh.
func (c *Catalog) ReplacePhotos(photos []models.Photo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.photos = clonePhotos(photos)
}

// ReplaceAlbums swaps the whole album list.
func (c *Catalog) ReplaceAlbums(albums []models.Album) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.albums = make([]models.Album, 0, len(albums))
	for _, a := range albums {
		c.albums = append(c.albums, a.Clone())
	}
}

func (c *Catalog) photoIndex(id string) int {
	for i, p := range c.photos {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) albumIndex(id string) int {
	for i, a := range c.albums {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func photoMatches(p models.Photo, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func clonePhotos(photos []models.Photo) []models.Photo {
	out := make([]models.Photo, 0, len(photos))
	for _, p := range photos {
		out = append(out, p.Clone())
	}
	return out
}
