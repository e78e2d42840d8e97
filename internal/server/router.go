// Package server wires the HTTP API: public read endpoints that degrade
// gracefully, and admin mutation endpoints that surface backend errors.
package server

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/azaliev/showcase/internal/logging"
	"github.com/azaliev/showcase/internal/models"
)

// IdentityService is the identity screen's operations.
type IdentityService interface {
	Load(ctx context.Context) *models.Identity
	UploadLogo(ctx context.Context, filename string, f io.ReadSeeker) (string, error)
	Save(ctx context.Context, ident *models.Identity) error
}

// GalleryService is the gallery screen's operations.
type GalleryService interface {
	List(ctx context.Context) ([]models.GalleryImage, error)
	Upload(ctx context.Context, filename, caption string, f io.ReadSeeker) (*models.GalleryImage, error)
	Remove(ctx context.Context, id string) error
}

// NoticeService is the notice board's operations.
type NoticeService interface {
	List(ctx context.Context) ([]models.Notice, error)
	Publish(ctx context.Context, filename, title, description string, f io.ReadSeeker) (*models.Notice, error)
	Remove(ctx context.Context, id string) error
}

// Services groups the three entity services behind the API.
type Services struct {
	Identity IdentityService
	Gallery  GalleryService
	Notices  NoticeService
}

// Options carries the HTTP-surface settings.
//
// AdminGuard, when set, runs before every /api/admin route. Access control is
// a deployment concern: the core ships no auth model, and a nil guard leaves
// the admin surface open.
type Options struct {
	CORSAllowedOrigins string
	MaxUploadBytes     int64
	AdminGuard         gin.HandlerFunc
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(svcs Services, log logging.Logger, opts Options) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(opts.CORSAllowedOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", handleHealth)

	h := &handlers{svcs: svcs, log: log, maxUploadBytes: opts.MaxUploadBytes}

	api := router.Group("/api")
	{
		api.GET("/identity", h.getIdentity)
		api.GET("/gallery", h.listGallery)
		api.GET("/notices", h.listNotices)

		admin := api.Group("/admin")
		if opts.AdminGuard != nil {
			admin.Use(opts.AdminGuard)
		}
		{
			admin.PUT("/identity", h.saveIdentity)
			admin.POST("/identity/logo", h.uploadLogo)
			admin.POST("/gallery", h.uploadGalleryImage)
			admin.DELETE("/gallery/:id", h.deleteGalleryImage)
			admin.POST("/notices", h.publishNotice)
			admin.DELETE("/notices/:id", h.deleteNotice)
		}
	}

	return router
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "showcase-api",
	})
}
