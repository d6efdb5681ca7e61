// api/handlers/element_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Annany2002/schema-builder/api/models"
	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/domain"
	"github.com/Annany2002/schema-builder/internal/render"
	"github.com/Annany2002/schema-builder/internal/storage"
)

// ElementHandler holds dependencies for element editing handlers.
// Every mutation is an editor call applied through SchemaStore.Modify.
type ElementHandler struct {
	Store  *storage.SchemaStore
	Editor *core.Editor
}

// NewElementHandler creates a new ElementHandler.
func NewElementHandler(store *storage.SchemaStore, editor *core.Editor) *ElementHandler {
	return &ElementHandler{
		Store:  store,
		Editor: editor,
	}
}

// ListElements returns a schema's elements in order. An unknown schema id is
// a 404 rather than an empty list, matching the other schema-scoped routes.
func (h *ElementHandler) ListElements(c *gin.Context) {
	schema, ok := h.Store.Get(c.Param("schema_id"))
	if !ok {
		_ = c.Error(storage.ErrSchemaNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schema_id": schema.ID, "elements": schema.Elements})
}

// AddElement appends a partial element to the schema.
func (h *ElementHandler) AddElement(c *gin.Context) {
	schemaID := c.Param("schema_id")

	var req models.ElementInput
	if err := bindJSON(c, &req); err != nil {
		customLog.Warnf("AddElement binding error: %v", err)
		_ = c.Error(err)
		return
	}

	updated, err := h.Store.Modify(schemaID, func(s domain.Schema) (domain.Schema, error) {
		return h.Editor.AddElement(s, req.ToDomain())
	})
	h.respondAdded(c, schemaID, updated, err)
}

// AddPreset appends one of the toolbar shortcut elements to the schema.
func (h *ElementHandler) AddPreset(c *gin.Context) {
	schemaID := c.Param("schema_id")
	kind := c.Param("kind")

	updated, err := h.Store.Modify(schemaID, func(s domain.Schema) (domain.Schema, error) {
		partial, err := core.Preset(kind, s)
		if err != nil {
			return s, err
		}
		return h.Editor.AddElement(s, partial)
	})
	h.respondAdded(c, schemaID, updated, err)
}

func (h *ElementHandler) respondAdded(c *gin.Context, schemaID string, updated domain.Schema, err error) {
	if err != nil {
		customLog.Warnf("Handler: Add element to schema '%s' rejected: %v", schemaID, err)
		_ = c.Error(err)
		return
	}

	added := updated.Elements[len(updated.Elements)-1]
	customLog.Printf("Handler: Added element %s to schema '%s'", render.DisplayName(added), schemaID)
	c.JSON(http.StatusCreated, gin.H{"schema": updated, "element": added})
}

// UpdateElementField changes a single field of one element.
func (h *ElementHandler) UpdateElementField(c *gin.Context) {
	schemaID := c.Param("schema_id")
	elementID := c.Param("element_id")

	var req models.UpdateElementFieldRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	field, err := core.ParseElementField(req.Field)
	if err != nil {
		_ = c.Error(err)
		return
	}

	updated, err := h.Store.Modify(schemaID, func(s domain.Schema) (domain.Schema, error) {
		return h.Editor.UpdateElementField(s, elementID, field, req.Value)
	})
	if err != nil {
		customLog.Warnf("Handler: Update of %s on element '%s' rejected: %v", field, elementID, err)
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RemoveElement deletes one element. Unknown element ids are ignored.
func (h *ElementHandler) RemoveElement(c *gin.Context) {
	schemaID := c.Param("schema_id")
	elementID := c.Param("element_id")

	updated, err := h.Store.Modify(schemaID, func(s domain.Schema) (domain.Schema, error) {
		return h.Editor.RemoveElement(s, elementID), nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	customLog.Printf("Handler: Removed element '%s' from schema '%s'", elementID, schemaID)
	c.JSON(http.StatusOK, updated)
}

// MoveElement swaps an element with its neighbour (up or down).
func (h *ElementHandler) MoveElement(c *gin.Context) {
	schemaID := c.Param("schema_id")
	elementID := c.Param("element_id")

	var req models.MoveElementRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	dir := core.ParseDirection(req.Direction)
	updated, err := h.Store.Modify(schemaID, func(s domain.Schema) (domain.Schema, error) {
		return h.Editor.MoveElement(s, elementID, dir)
	})
	if err != nil {
		customLog.Warnf("Handler: Move %s of element '%s' rejected: %v", dir, elementID, err)
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
