package routes

import (
	albumsapi "gallery-app/internal/api/albums"
	imagesapi "gallery-app/internal/api/images"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/blobstore"
	"gallery-app/internal/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store blobstore.Store) {
	imageRepo := gallery.NewImageRepository(db)
	albumRepo := gallery.NewAlbumRepository(db)

	mutations := gallery.NewMutationService(db, imageRepo, store)
	queries := gallery.NewQueryService(imageRepo, albumRepo)

	images := imagesapi.NewHandler(mutations, queries)
	albums := albumsapi.NewHandler(queries)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Anonymous browsing
	r.GET("/images", images.PublicFeed)
	r.GET("/images/:id", images.Detail)
	r.GET("/albums", albums.List)
	r.GET("/filter", images.Filter)

	// Authenticated mutations and the owner feed
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeFormInputMiddleware())
	auth.GET("/my/images", images.OwnerFeed)
	auth.POST("/images", images.Create)
	auth.PUT("/images/:id", images.Edit)
	auth.DELETE("/images/:id", images.Delete)
}
