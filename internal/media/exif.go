// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

// Package media prepares image files for upload: EXIF metadata extraction and
// thumbnail generation. Both are best-effort, a plain image without EXIF is
// perfectly valid and yields nil metadata, not an error.
package media

import (
	"fmt"
	"io"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/shpixel/gallery/models"
)

// ExtractMetadata reads EXIF data from r and maps the known tags onto
// [models.PhotoMetadata]. Returns nil when the file carries no EXIF block or
// none of the mapped tags; individual unreadable tags are skipped.
func ExtractMetadata(r io.Reader) *models.PhotoMetadata {
	x, err := exif.Decode(r)
	if err != nil {
		return nil
	}

	meta := &models.PhotoMetadata{}
	found := false

	if v, ok := stringTag(x, exif.Model); ok {
		meta.Camera = &v
		found = true
	}
	if v, ok := stringTag(x, exif.LensModel); ok {
		meta.Lens = &v
		found = true
	}
	if v, ok := ratioTag(x, exif.FocalLength); ok {
		s := fmt.Sprintf("%.0fmm", v)
		meta.FocalLength = &s
		found = true
	}
	if v, ok := ratioTag(x, exif.FNumber); ok {
		s := fmt.Sprintf("f/%.1f", v)
		meta.Aperture = &s
		found = true
	}
	if v, ok := exposureTag(x); ok {
		meta.ShutterSpeed = &v
		found = true
	}
	if v, ok := intTag(x, exif.ISOSpeedRatings); ok {
		meta.ISO = &v
		found = true
	}

	w, wok := intTag(x, exif.PixelXDimension)
	h, hok := intTag(x, exif.PixelYDimension)
	if wok && hok && w > 0 && h > 0 {
		meta.Dimensions = &models.Dimension{Width: w, Height: h}
		found = true
	}

	if lat, long, err := x.LatLong(); err == nil {
		meta.Location = &models.Location{Latitude: &lat, Longitude: &long}
		found = true
	}

	if !found {
		return nil
	}
	return meta
}

// ExtractDateTaken returns the EXIF capture timestamp, or nil when absent.
func ExtractDateTaken(r io.Reader) *time.Time {
	x, err := exif.Decode(r)
	if err != nil {
		return nil
	}
	taken, err := x.DateTime()
	if err != nil {
		return nil
	}
	return &taken
}

func stringTag(x *exif.Exif, name exif.FieldName) (string, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return "", false
	}
	v, err := tag.StringVal()
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func intTag(x *exif.Exif, name exif.FieldName) (int, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, false
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ratioTag(x *exif.Exif, name exif.FieldName) (float64, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, false
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// exposureTag renders ExposureTime the way photographers read it: fractional
// for anything under a second, plain seconds otherwise.
func exposureTag(x *exif.Exif) (string, bool) {
	tag, err := x.Get(exif.ExposureTime)
	if err != nil {
		return "", false
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 || num == 0 {
		return "", false
	}
	if num < den {
		return fmt.Sprintf("1/%ds", den/num), true
	}
	return fmt.Sprintf("%ds", num/den), true
}
