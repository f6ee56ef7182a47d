package devserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the chi router: auth endpoints are open, everything else
// requires a bearer token.
func (s *Server) Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/auth/request-otp/", s.requestOTP)
		r.Post("/auth/verify-otp/", s.verifyOTP)
	})

	router.Group(func(r chi.Router) {
		r.Use(s.withAuth)

		r.Post("/auth/setup-profile/", s.setupProfile)
		r.Post("/auth/logout/", s.logout)

		r.Get("/photos/", s.listPhotos)
		r.Post("/photos/", s.createPhoto)
		r.Patch("/photos/{id}/", s.updatePhoto)
		r.Delete("/photos/{id}/", s.deletePhoto)

		r.Get("/albums/", s.listAlbums)
		r.Post("/albums/", s.createAlbum)
		r.Patch("/albums/{id}/", s.updateAlbum)
		r.Delete("/albums/{id}/", s.deleteAlbum)
	})

	return router
}
