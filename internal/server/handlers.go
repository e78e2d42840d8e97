package server

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azaliev/showcase/internal/common"
	"github.com/azaliev/showcase/internal/logging"
	"github.com/azaliev/showcase/internal/models"
)

type handlers struct {
	svcs           Services
	log            logging.Logger
	maxUploadBytes int64
}

// respondError maps the error taxonomy onto HTTP statuses. The backend
// message is passed through verbatim so the admin screen can display it.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"code": "BACKEND_ERROR", "message": err.Error()})
	}
}

// formFile opens the uploaded "file" part and enforces the size limit.
// A nil file means an error response was already written.
func (h *handlers) formFile(c *gin.Context) (string, multipart.File, func()) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "a file is required"})
		return "", nil, nil
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "VALIDATION_ERROR",
			"message": fmt.Sprintf("file exceeds the %d byte limit", h.maxUploadBytes),
		})
		return "", nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "could not read the uploaded file"})
		return "", nil, nil
	}
	return fh.Filename, f, func() { _ = f.Close() }
}

// --- public reads ---

// getIdentity never fails: a missing row or a read error renders as empty
// defaults so the public home page can show its placeholder content.
func (h *handlers) getIdentity(c *gin.Context) {
	c.JSON(http.StatusOK, h.svcs.Identity.Load(c.Request.Context()))
}

// listGallery degrades a failed read to an empty list; the public page shows
// its empty state instead of an error banner.
func (h *handlers) listGallery(c *gin.Context) {
	items, err := h.svcs.Gallery.List(c.Request.Context())
	if err != nil {
		h.log.Warn(c.Request.Context(), "gallery list failed, serving empty", "error", err)
		items = []models.GalleryImage{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) listNotices(c *gin.Context) {
	items, err := h.svcs.Notices.List(c.Request.Context())
	if err != nil {
		h.log.Warn(c.Request.Context(), "notices list failed, serving empty", "error", err)
		items = []models.Notice{}
	}
	c.JSON(http.StatusOK, items)
}

// --- admin mutations ---

func (h *handlers) saveIdentity(c *gin.Context) {
	var ident models.Identity
	if err := c.ShouldBindJSON(&ident); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "invalid identity payload"})
		return
	}
	if err := h.svcs.Identity.Save(c.Request.Context(), &ident); err != nil {
		respondError(c, err)
		return
	}
	// resync from the source of truth after a successful save
	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully!",
		"identity": h.svcs.Identity.Load(c.Request.Context()),
	})
}

func (h *handlers) uploadLogo(c *gin.Context) {
	filename, f, closeFn := h.formFile(c)
	if f == nil {
		return
	}
	defer closeFn()

	url, err := h.svcs.Identity.UploadLogo(c.Request.Context(), filename, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Logo uploaded! Don't forget to save changes.",
		"logo_url": url,
	})
}

func (h *handlers) uploadGalleryImage(c *gin.Context) {
	filename, f, closeFn := h.formFile(c)
	if f == nil {
		return
	}
	defer closeFn()

	created, err := h.svcs.Gallery.Upload(c.Request.Context(), filename, c.PostForm("caption"), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Image added to gallery!",
		"image":   created,
	})
}

func (h *handlers) deleteGalleryImage(c *gin.Context) {
	id := c.Param("id")
	if err := h.svcs.Gallery.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *handlers) publishNotice(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	filename, f, closeFn := h.formFile(c)
	if f == nil {
		return
	}
	defer closeFn()

	created, err := h.svcs.Notices.Publish(c.Request.Context(), filename, title, description, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Notice published successfully!",
		"notice":  created,
	})
}

func (h *handlers) deleteNotice(c *gin.Context) {
	id := c.Param("id")
	if err := h.svcs.Notices.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
