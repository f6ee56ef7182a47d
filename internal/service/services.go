package service

import (
	"github.com/shpixel/gallery/internal/adapter"
	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/internal/session"
	"github.com/shpixel/gallery/internal/store"
)

// Services groups the application services the UI layer consumes.
type Services struct {
	Auth    AuthService
	Gallery GalleryService
}

// NewServices wires the service layer and installs the global unauthorized
// hook: any 401 from any endpoint clears the session before the error
// reaches the caller.
func NewServices(storages *store.Storages, serverAdapter adapter.ServerAdapter, sess *session.Session, thumbDir string, log *logger.Logger) *Services {
	authSvc := NewAuthService(serverAdapter, sess, storages.Local, log)
	gallerySvc := NewGalleryService(storages, serverAdapter, thumbDir, log)

	serverAdapter.OnUnauthorized(authSvc.Invalidate)

	return &Services{
		Auth:    authSvc,
		Gallery: gallerySvc,
	}
}
