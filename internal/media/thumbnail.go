package media

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/shpixel/gallery/models"
)

// ThumbnailSize is the bounding box (longest side, px) for generated previews.
const ThumbnailSize = 400

// Thumbnail produces a preview of the image at srcPath, scaled to fit
// ThumbnailSize, and writes it as JPEG to dstPath.
func Thumbnail(srcPath, dstPath string) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}

	thumb := imaging.Fit(img, ThumbnailSize, ThumbnailSize, imaging.Lanczos)
	if err = imaging.Save(thumb, dstPath, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("save thumbnail: %w", err)
	}
	return nil
}

// Fit scales img down to fit the given bounding box, preserving aspect ratio.
// Images already inside the box are returned unchanged.
func Fit(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}
	return imaging.Fit(img, size, size, imaging.Lanczos)
}

// Dimensions reads the pixel size of the image file at path without decoding
// the full image. Used as a fallback when EXIF carries no dimension tags.
func Dimensions(path string) (*models.Dimension, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	b := img.Bounds()
	return &models.Dimension{Width: b.Dx(), Height: b.Dy()}, nil
}
