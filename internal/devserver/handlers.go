package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shpixel/gallery/internal/app"
	"github.com/shpixel/gallery/models"
)

func (s *Server) requestOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, app.MsgInvalidEmailOrOtp)
		return
	}
	email := strings.TrimSpace(req.Email)

	code := s.issueOTP(email)
	// The "mail" is the server log; good enough for a dev loop.
	s.logger.Info().Str("email", email).Str("otp", code).Msg("issued one-time code")

	writeJSON(w, http.StatusOK, models.OtpResponse{
		Email:   email,
		OtpSent: true,
		Message: app.MsgOtpSent,
	})
}

func (s *Server) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, app.MsgInvalidEmailOrOtp)
		return
	}

	if err := s.consumeOTP(strings.TrimSpace(req.Email), strings.TrimSpace(req.OTP)); err != nil {
		switch {
		case errors.Is(err, errOTPExpired):
			writeError(w, http.StatusBadRequest, app.MsgOtpExpired)
		case errors.Is(err, errInvalidOTP):
			writeError(w, http.StatusBadRequest, app.MsgInvalidOtp)
		default:
			writeError(w, http.StatusBadRequest, app.MsgInvalidEmailOrOtp)
		}
		return
	}

	user := s.ensureAccount(strings.TrimSpace(req.Email))
	token, err := s.issueToken(user.ID)
	if err != nil {
		s.logger.Err(err).Msg("token issue failed")
		writeError(w, http.StatusInternalServerError, app.MsgInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{User: user, Token: token})
}

func (s *Server) setupProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.userByID(userIDFromContext(r.Context()))
	if !ok {
		writeError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, app.MsgProfileFieldsRequired)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	gender := strings.TrimSpace(r.FormValue("gender"))
	if name == "" || phone == "" || gender == "" {
		writeError(w, http.StatusBadRequest, app.MsgProfileFieldsRequired)
		return
	}

	user.Name = &name
	user.Phone = &phone
	user.Gender = &gender
	user.IsProfileComplete = true

	if _, header, err := r.FormFile("avatar"); err == nil {
		// Nothing is stored; the URI just has to look plausible.
		avatar := "/media/avatars/" + header.Filename
		user.Avatar = &avatar
	}

	s.updateUser(user)

	token, err := s.issueToken(user.ID)
	if err != nil {
		s.logger.Err(err).Msg("token issue failed")
		writeError(w, http.StatusInternalServerError, app.MsgInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{User: user, Token: token})
}

func (s *Server) logout(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listPhotos(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	s.mu.Lock()
	photos := append([]models.Photo(nil), s.photos[userID]...)
	s.mu.Unlock()

	if photos == nil {
		photos = []models.Photo{}
	}
	writeJSON(w, http.StatusOK, photos)
}

func (s *Server) createPhoto(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var photo models.Photo
	if err := r.ParseMultipartForm(32 << 20); err == nil {
		if err = json.Unmarshal([]byte(r.FormValue("photo")), &photo); err != nil {
			writeError(w, http.StatusBadRequest, app.MsgPhotoNotFound)
			return
		}
	} else if err = json.NewDecoder(r.Body).Decode(&photo); err != nil {
		writeError(w, http.StatusBadRequest, app.MsgPhotoNotFound)
		return
	}

	if photo.ID == "" {
		photo.ID = uuid.NewString()
	}
	// A stored photo gets server-side URIs.
	photo.Src = "/media/photos/" + photo.ID + ".jpg"
	photo.Thumbnail = "/media/thumbs/" + photo.ID + ".jpg"

	s.mu.Lock()
	for _, existing := range s.photos[userID] {
		if existing.ID == photo.ID {
			s.mu.Unlock()
			writeError(w, http.StatusConflict, app.MsgDuplicateID)
			return
		}
	}
	s.photos[userID] = append(s.photos[userID], photo)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, photo)
}

func (s *Server) updatePhoto(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var patch models.Photo
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, app.MsgPhotoNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.photos[userID] {
		if existing.ID == id {
			patch.ID = id
			patch.Src = existing.Src
			patch.Thumbnail = existing.Thumbnail
			s.photos[userID][i] = patch
			writeJSON(w, http.StatusOK, patch)
			return
		}
	}
	writeError(w, http.StatusNotFound, app.MsgPhotoNotFound)
}

func (s *Server) deletePhoto(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.photos[userID] {
		if existing.ID == id {
			s.photos[userID] = append(s.photos[userID][:i], s.photos[userID][i+1:]...)
			// Mirror the client-side referential cleanup.
			for ai := range s.albums[userID] {
				album := &s.albums[userID][ai]
				for pi, pid := range album.PhotoIDs {
					if pid == id {
						album.PhotoIDs = append(album.PhotoIDs[:pi], album.PhotoIDs[pi+1:]...)
						break
					}
				}
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, app.MsgPhotoNotFound)
}

func (s *Server) listAlbums(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	s.mu.Lock()
	albums := append([]models.Album(nil), s.albums[userID]...)
	s.mu.Unlock()

	if albums == nil {
		albums = []models.Album{}
	}
	writeJSON(w, http.StatusOK, albums)
}

func (s *Server) createAlbum(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var album models.Album
	if err := json.NewDecoder(r.Body).Decode(&album); err != nil || strings.TrimSpace(album.Name) == "" {
		writeError(w, http.StatusBadRequest, app.MsgAlbumNotFound)
		return
	}
	if album.ID == "" {
		album.ID = uuid.NewString()
	}

	s.mu.Lock()
	for _, existing := range s.albums[userID] {
		if existing.ID == album.ID {
			s.mu.Unlock()
			writeError(w, http.StatusConflict, app.MsgDuplicateID)
			return
		}
	}
	s.albums[userID] = append(s.albums[userID], album)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, album)
}

func (s *Server) updateAlbum(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var patch models.Album
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, app.MsgAlbumNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.albums[userID] {
		if existing.ID == id {
			patch.ID = id
			s.albums[userID][i] = patch
			writeJSON(w, http.StatusOK, patch)
			return
		}
	}
	writeError(w, http.StatusNotFound, app.MsgAlbumNotFound)
}

func (s *Server) deleteAlbum(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.albums[userID] {
		if existing.ID == id {
			s.albums[userID] = append(s.albums[userID][:i], s.albums[userID][i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, app.MsgAlbumNotFound)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.APIError{Error: message})
}
