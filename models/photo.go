// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package models

import "time"

// Photo represents a single uploaded image in the user's gallery.
//
// The ID is assigned by the client at upload time and is immutable afterwards.
// Optional attributes use pointer types so that "unknown" stays distinguishable
// from an explicit empty value.
type Photo struct {
	// ID is the unique identifier of the photo within the gallery.
	// Assigned once at creation and never changed.
	ID string `json:"id"`

	// Src is the URI of the full-size image.
	Src string `json:"src"`

	// Thumbnail is the URI of the reduced preview image.
	Thumbnail string `json:"thumbnail"`

	// Alt is the accessible text label describing the image.
	Alt string `json:"alt"`

	// Title is the user-facing name of the photo. Always non-empty.
	Title string `json:"title"`

	// Description is an optional free-text description.
	Description *string `json:"description,omitempty"`

	// DateUploaded is the moment the photo entered the gallery.
	DateUploaded time.Time `json:"date_uploaded"`

	// DateTaken is the optional capture timestamp, usually sourced from EXIF.
	DateTaken *time.Time `json:"date_taken,omitempty"`

	// Tags is the list of tag strings attached to the photo.
	// Tags are case-sensitive; ordering carries no meaning.
	Tags []string `json:"tags"`

	// Favorite marks the photo as a user favorite. Defaults to false.
	Favorite bool `json:"favorite"`

	// Metadata holds optional camera and location details extracted from the
	// image file. Nil when the file carried no usable EXIF data.
	Metadata *PhotoMetadata `json:"metadata,omitempty"`
}

// Clone returns a deep copy of the photo so that callers can hand out
// snapshots without aliasing internal state.
func (p Photo) Clone() Photo {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	if p.DateTaken != nil {
		t := *p.DateTaken
		out.DateTaken = &t
	}
	if p.Metadata != nil {
		m := p.Metadata.clone()
		out.Metadata = &m
	}
	return out
}

// PhotoMetadata carries optional capture details for a photo.
// Every field may be absent; a nil pointer means the value is unknown.
type PhotoMetadata struct {
	Camera       *string    `json:"camera,omitempty"`
	Lens         *string    `json:"lens,omitempty"`
	FocalLength  *string    `json:"focal_length,omitempty"`
	Aperture     *string    `json:"aperture,omitempty"`
	ShutterSpeed *string    `json:"shutter_speed,omitempty"`
	ISO          *int       `json:"iso,omitempty"`
	Dimensions   *Dimension `json:"dimensions,omitempty"`
	Location     *Location  `json:"location,omitempty"`
}

// Dimension is the pixel size of an image.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Location is an optional place attached to a photo. Either the coordinates or
// the name (or both) may be present.
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Name      *string  `json:"name,omitempty"`
}

func (m PhotoMetadata) clone() PhotoMetadata {
	out := m
	out.Camera = cloneStringPtr(m.Camera)
	out.Lens = cloneStringPtr(m.Lens)
	out.FocalLength = cloneStringPtr(m.FocalLength)
	out.Aperture = cloneStringPtr(m.Aperture)
	out.ShutterSpeed = cloneStringPtr(m.ShutterSpeed)
	if m.ISO != nil {
		v := *m.ISO
		out.ISO = &v
	}
	if m.Dimensions != nil {
		d := *m.Dimensions
		out.Dimensions = &d
	}
	if m.Location != nil {
		l := *m.Location
		l.Latitude = cloneFloatPtr(m.Location.Latitude)
		l.Longitude = cloneFloatPtr(m.Location.Longitude)
		l.Name = cloneStringPtr(m.Location.Name)
		out.Location = &l
	}
	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloatPtr(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
