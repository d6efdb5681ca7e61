package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Annany2002/schema-builder/internal/render"
	"github.com/Annany2002/schema-builder/internal/storage"
)

// PreviewHandler serves read-only renderings of a schema.
type PreviewHandler struct {
	Store *storage.SchemaStore
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(store *storage.SchemaStore) *PreviewHandler {
	return &PreviewHandler{Store: store}
}

// Preview renders the schema as an HTML form page.
func (h *PreviewHandler) Preview(c *gin.Context) {
	schema, ok := h.Store.Get(c.Param("schema_id"))
	if !ok {
		_ = c.Error(storage.ErrSchemaNotFound)
		return
	}

	page, err := render.PreviewHTML(schema)
	if err != nil {
		customLog.Warnf("Handler: Failed to render preview for schema '%s': %v", schema.ID, err)
		_ = c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Cards returns the per-element detail cards for a schema.
func (h *PreviewHandler) Cards(c *gin.Context) {
	schema, ok := h.Store.Get(c.Param("schema_id"))
	if !ok {
		_ = c.Error(storage.ErrSchemaNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"schema_id":     schema.ID,
		"name":          schema.Name,
		"element_count": len(schema.Elements),
		"cards":         render.Cards(schema),
	})
}
