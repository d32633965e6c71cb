package albums

import (
	"net/http"

	"gallery-app/internal/gallery"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Queries *gallery.QueryService
}

func NewHandler(queries *gallery.QueryService) *Handler {
	return &Handler{Queries: queries}
}

// GET /albums — the album choices for the public feed filter. Album
// management itself lives outside this service.
func (h *Handler) List(c *gin.Context) {
	albums, err := h.Queries.Albums(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load albums"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"albums": albums})
}
