package images

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/internal/gallery"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Mutations *gallery.MutationService
	Queries   *gallery.QueryService
}

func NewHandler(mutations *gallery.MutationService, queries *gallery.QueryService) *Handler {
	return &Handler{Mutations: mutations, Queries: queries}
}

func mustIdentity(c *gin.Context) (gallery.Identity, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return gallery.Identity{}, false
	}
	return gallery.Identity{UserID: userID, UserName: c.GetString("user_name")}, true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image id"})
		return 0, false
	}
	return uint(id), true
}

// uploadFrom extracts the optional file part. The returned cleanup must
// run after the service call.
func uploadFrom(c *gin.Context) (*gallery.Upload, func(), error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	src, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	up := &gallery.Upload{Name: fh.Filename, Size: fh.Size, Reader: src}
	return up, func() { src.Close() }, nil
}

// ------------------------------
// GET /images?album_id=N  (anonymous)
// ------------------------------
func (h *Handler) PublicFeed(c *gin.Context) {
	albumID := gallery.NoAlbumFilter
	if raw := c.Query("album_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid album id"})
			return
		}
		albumID = uint(parsed)
	}

	feed, err := h.Queries.PublicFeed(c.Request.Context(), albumID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load images"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": feed})
}

// ------------------------------
// GET /images/:id  (anonymous)
// ------------------------------
func (h *Handler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	img, err := h.Queries.Detail(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

// ------------------------------
// GET /my/images
// ------------------------------
func (h *Handler) OwnerFeed(c *gin.Context) {
	ident, ok := mustIdentity(c)
	if !ok {
		return
	}

	feed, err := h.Queries.OwnerFeed(c.Request.Context(), ident)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load images"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": feed})
}

// ------------------------------
// POST /images  (multipart)
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	ident, ok := mustIdentity(c)
	if !ok {
		return
	}

	var form ImageForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, cleanup, err := uploadFrom(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer cleanup()

	img, err := h.Mutations.Create(c.Request.Context(), ident, gallery.ImageInput{
		Caption:  form.Caption,
		Location: form.Location,
		Filter:   form.Filter,
		AlbumID:  form.AlbumID,
	}, file)
	if err != nil {
		h.respondError(c, form, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

// ------------------------------
// PUT /images/:id  (multipart)
// ------------------------------
func (h *Handler) Edit(c *gin.Context) {
	ident, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form EditForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, cleanup, err := uploadFrom(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer cleanup()

	img, err := h.Mutations.Edit(c.Request.Context(), ident, id, gallery.EditInput{
		ImageID: form.ImageID,
		Version: form.Version,
		ImageInput: gallery.ImageInput{
			Caption:  form.Caption,
			Location: form.Location,
			Filter:   form.Filter,
			AlbumID:  form.AlbumID,
		},
	}, file)
	if err != nil {
		h.respondError(c, form, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

// ------------------------------
// DELETE /images/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	ident, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Mutations.Delete(c.Request.Context(), ident, id); err != nil {
		h.respondError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// GET /images/filter
// ------------------------------
// Filter is a display-attribute stub: it names the CSS filter the view
// applies and performs no pixel manipulation.
func (h *Handler) Filter(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"filter": "grayscale(100%);"})
}

// respondError maps the service error taxonomy onto HTTP. Validation
// failures echo the submitted form so the caller can redisplay it.
func (h *Handler) respondError(c *gin.Context, form interface{}, err error) {
	var verr *gallery.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": verr.Fields,
			"image":  form,
		})
	case errors.Is(err, gallery.ErrIdentityMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image id mismatch"})
	case errors.Is(err, gallery.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, gallery.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
	case errors.Is(err, gallery.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Image was modified concurrently"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed", "details": err.Error()})
	}
}
