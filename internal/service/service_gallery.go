// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shpixel/gallery/internal/adapter"
	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/internal/media"
	"github.com/shpixel/gallery/internal/store"
	"github.com/shpixel/gallery/models"
)

type galleryService struct {
	storages *store.Storages
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	// thumbDir receives locally generated previews until the next refresh
	// replaces them with server URIs.
	thumbDir string
}

func NewGalleryService(storages *store.Storages, serverAdapter adapter.ServerAdapter, thumbDir string, log *logger.Logger) GalleryService {
	return &galleryService{
		storages: storages,
		adapter:  serverAdapter,
		logger:   log,
		thumbDir: thumbDir,
	}
}

func (g *galleryService) Restore(ctx context.Context) error {
	photos, err := g.storages.Local.Photos(ctx)
	if err != nil {
		return fmt.Errorf("restore photos: %w", err)
	}
	albums, err := g.storages.Local.Albums(ctx)
	if err != nil {
		return fmt.Errorf("restore albums: %w", err)
	}

	g.storages.Catalog.ReplacePhotos(photos)
	g.storages.Catalog.ReplaceAlbums(albums)

	prefs, err := g.storages.Local.Prefs(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("failed to restore preferences")
		return nil
	}
	if v, ok := prefs["theme"]; ok {
		g.storages.Prefs.SetTheme(models.ThemeMode(v))
	}
	if v, ok := prefs["view"]; ok {
		g.storages.Prefs.SetViewMode(models.ViewMode(v))
	}
	if v, ok := prefs["sort"]; ok {
		g.storages.Prefs.SetSort(models.SortOption(v))
	}
	return nil
}

func (g *galleryService) Refresh(ctx context.Context) error {
	photos, err := g.adapter.ListPhotos(ctx)
	if err != nil {
		return fmt.Errorf("refresh photos: %w", err)
	}
	albums, err := g.adapter.ListAlbums(ctx)
	if err != nil {
		return fmt.Errorf("refresh albums: %w", err)
	}

	g.storages.Catalog.ReplacePhotos(photos)
	g.storages.Catalog.ReplaceAlbums(albums)
	g.persistCatalog(ctx)
	return nil
}

func (g *galleryService) Upload(ctx context.Context, input UploadInput) (models.Photo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Photo{}, ErrTitleRequired
	}
	if input.FilePath == "" {
		return models.Photo{}, ErrFileRequired
	}

	photo := models.Photo{
		ID:           uuid.NewString(),
		Title:        title,
		Alt:          strings.TrimSpace(input.Alt),
		Tags:         normalizeTags(input.Tags),
		DateUploaded: time.Now().UTC(),
		Favorite:     false,
	}
	if photo.Alt == "" {
		photo.Alt = title
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		photo.Description = &desc
	}

	g.attachFileDetails(&photo, input.FilePath)

	stored, err := g.adapter.UploadPhoto(ctx, photo, input.FilePath)
	if err != nil {
		return models.Photo{}, err
	}

	if err = g.storages.Catalog.AddPhoto(stored); err != nil {
		return models.Photo{}, err
	}
	g.persistCatalog(ctx)
	return stored, nil
}

func (g *galleryService) ToggleFavorite(ctx context.Context, id string) error {
	g.storages.Catalog.ToggleFavorite(id)

	photo, ok := g.storages.Catalog.Photo(id)
	if !ok {
		return nil
	}

	if err := g.adapter.UpdatePhoto(ctx, photo); err != nil {
		g.storages.Catalog.ToggleFavorite(id) // roll back
		return err
	}
	g.persistCatalog(ctx)
	return nil
}

func (g *galleryService) UpdatePhoto(ctx context.Context, photo models.Photo) error {
	if strings.TrimSpace(photo.Title) == "" {
		return ErrTitleRequired
	}

	previous, ok := g.storages.Catalog.Photo(photo.ID)
	if !ok {
		return nil
	}
	photo.Tags = normalizeTags(photo.Tags)
	g.storages.Catalog.UpdatePhoto(photo)

	if err := g.adapter.UpdatePhoto(ctx, photo); err != nil {
		g.storages.Catalog.UpdatePhoto(previous) // roll back
		return err
	}
	g.persistCatalog(ctx)
	return nil
}

func (g *galleryService) DeletePhoto(ctx context.Context, id string) error {
	if err := g.adapter.DeletePhoto(ctx, id); err != nil {
		return err
	}
	g.storages.Catalog.RemovePhoto(id)
	g.persistCatalog(ctx)
	return nil
}

func (g *galleryService) CreateAlbum(ctx context.Context, name, description string) (models.Album, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Album{}, ErrNameRequired
	}

	album := models.Album{
		ID:          uuid.NewString(),
		Name:        name,
		DateCreated: time.Now().UTC(),
		PhotoIDs:    []string{},
	}
	if desc := strings.TrimSpace(description); desc != "" {
		album.Description = &desc
	}

	if err := g.adapter.CreateAlbum(ctx, album); err != nil {
		return models.Album{}, err
	}
	if err := g.storages.Catalog.AddAlbum(album); err != nil {
		return models.Album{}, err
	}
	g.persistCatalog(ctx)
	return album, nil
}

func (g *galleryService) DeleteAlbum(ctx context.Context, id string) error {
	if err := g.adapter.DeleteAlbum(ctx, id); err != nil {
		return err
	}
	g.storages.Catalog.RemoveAlbum(id)
	g.persistCatalog(ctx)
	return nil
}

func (g *galleryService) AddToAlbum(ctx context.Context, photoID, albumID string) error {
	if _, ok := g.storages.Catalog.Album(albumID); !ok {
		return nil
	}

	g.storages.Catalog.AddPhotoToAlbum(photoID, albumID)
	album, _ := g.storages.Catalog.Album(albumID)

	if err := g.adapter.UpdateAlbum(ctx, album); err != nil {
		g.storages.Catalog.RemovePhotoFromAlbum(photoID, albumID) // roll back
		return err
	}
	g.persistCatalog(ctx)
	return nil
}

func (g *galleryService) RemoveFromAlbum(ctx context.Context, photoID, albumID string) error {
	album, ok := g.storages.Catalog.Album(albumID)
	if !ok || !album.Contains(photoID) {
		return nil
	}

	g.storages.Catalog.RemovePhotoFromAlbum(photoID, albumID)
	updated, _ := g.storages.Catalog.Album(albumID)

	if err := g.adapter.UpdateAlbum(ctx, updated); err != nil {
		g.storages.Catalog.AddPhotoToAlbum(photoID, albumID) // roll back
		return err
	}
	g.persistCatalog(ctx)
	return nil
}

// attachFileDetails fills Src, Thumbnail, Metadata and DateTaken from the
// local file. Every step is best-effort: a photo without EXIF or a failed
// thumbnail still uploads fine.
func (g *galleryService) attachFileDetails(photo *models.Photo, filePath string) {
	photo.Src = filePath

	if f, err := os.Open(filePath); err == nil {
		photo.Metadata = media.ExtractMetadata(f)
		_ = f.Close()
	}
	if f, err := os.Open(filePath); err == nil {
		photo.DateTaken = media.ExtractDateTaken(f)
		_ = f.Close()
	}

	if photo.Metadata == nil || photo.Metadata.Dimensions == nil {
		if dim, err := media.Dimensions(filePath); err == nil {
			if photo.Metadata == nil {
				photo.Metadata = &models.PhotoMetadata{}
			}
			photo.Metadata.Dimensions = dim
		}
	}

	if g.thumbDir != "" {
		thumbPath := filepath.Join(g.thumbDir, photo.ID+".jpg")
		if err := media.Thumbnail(filePath, thumbPath); err != nil {
			g.logger.Warn().Err(err).Str("file", filePath).Msg("failed to build thumbnail")
		} else {
			photo.Thumbnail = thumbPath
		}
	}
	if photo.Thumbnail == "" {
		photo.Thumbnail = filePath
	}
}

func (g *galleryService) persistCatalog(ctx context.Context) {
	if err := g.storages.Local.SavePhotos(ctx, g.storages.Catalog.Photos()); err != nil {
		g.logger.Warn().Err(err).Msg("failed to cache photos")
	}
	if err := g.storages.Local.SaveAlbums(ctx, g.storages.Catalog.Albums()); err != nil {
		g.logger.Warn().Err(err).Msg("failed to cache albums")
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
