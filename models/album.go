// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package models

import "time"

// Album is a named, user-curated collection of photo references.
//
// PhotoIDs holds references, not ownership: deleting an album never deletes
// the member photos, while deleting a photo removes its id from every album.
type Album struct {
	// ID is the unique identifier of the album, assigned at creation.
	ID string `json:"id"`

	// Name is the required display name. Non-empty after trimming.
	Name string `json:"name"`

	// Description is an optional free-text description.
	Description *string `json:"description,omitempty"`

	// CoverPhotoID optionally references the photo used as the album cover.
	// A dangling reference is tolerated; cover resolution falls back to the
	// first member photo.
	CoverPhotoID *string `json:"cover_photo_id,omitempty"`

	// DateCreated is the moment the album was created.
	DateCreated time.Time `json:"date_created"`

	// PhotoIDs is the ordered list of member photo ids. Contains no
	// duplicates; insertion order is a display hint only.
	PhotoIDs []string `json:"photo_ids"`
}

// Clone returns a deep copy of the album.
func (a Album) Clone() Album {
	out := a
	if a.PhotoIDs != nil {
		out.PhotoIDs = append([]string(nil), a.PhotoIDs...)
	}
	out.Description = cloneStringPtr(a.Description)
	out.CoverPhotoID = cloneStringPtr(a.CoverPhotoID)
	return out
}

// Contains reports whether id is already a member of the album.
func (a Album) Contains(id string) bool {
	for _, pid := range a.PhotoIDs {
		if pid == id {
			return true
		}
	}
	return false
}
