// api/handlers/schema_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Annany2002/schema-builder/api/models"
	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/domain"
	"github.com/Annany2002/schema-builder/internal/storage"
)

// SchemaHandler holds dependencies for schema management handlers.
type SchemaHandler struct {
	Store  *storage.SchemaStore
	Editor *core.Editor
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(store *storage.SchemaStore, editor *core.Editor) *SchemaHandler {
	return &SchemaHandler{
		Store:  store,
		Editor: editor,
	}
}

// ListSchemas returns schema summaries filtered by ?q= (case-insensitive), in store order.
func (h *SchemaHandler) ListSchemas(c *gin.Context) {
	opts, err := core.ParseListQueryOptions(c.Request.URL.Query())
	if err != nil {
		_ = c.Error(err)
		return
	}

	summaries := h.Store.List(opts.Filter)
	start, end := opts.Page(len(summaries))

	c.JSON(http.StatusOK, gin.H{
		"schemas":   summaries[start:end],
		"total":     len(summaries),
		"active_id": h.Store.ActiveID(),
	})
}

// ListSchemaNames returns every schema name in store order.
func (h *SchemaHandler) ListSchemaNames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"names": h.Store.Names()})
}

// GetSchema returns one schema by id.
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	schema, ok := h.Store.Get(c.Param("schema_id"))
	if !ok {
		_ = c.Error(storage.ErrSchemaNotFound)
		return
	}
	c.JSON(http.StatusOK, schema)
}

// GetSchemaByName returns the first schema whose name matches exactly.
func (h *SchemaHandler) GetSchemaByName(c *gin.Context) {
	schema, ok := h.Store.FindByName(c.Param("name"))
	if !ok {
		_ = c.Error(fmt.Errorf("%w: no schema named '%s'", storage.ErrSchemaNotFound, c.Param("name")))
		return
	}
	c.JSON(http.StatusOK, schema)
}

// GetActive returns the active schema, or a null schema when none is active.
func (h *SchemaHandler) GetActive(c *gin.Context) {
	c.JSON(http.StatusOK, h.activeResponse())
}

// SelectSchema sets the active schema. Unknown ids leave nothing active.
func (h *SchemaHandler) SelectSchema(c *gin.Context) {
	var req models.SelectSchemaRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	h.Store.Select(req.ID)
	customLog.Printf("Handler: Active schema set to '%s'", h.Store.ActiveID())
	c.JSON(http.StatusOK, h.activeResponse())
}

func (h *SchemaHandler) activeResponse() models.ActiveSchemaResponse {
	resp := models.ActiveSchemaResponse{ActiveID: h.Store.ActiveID()}
	if schema, ok := h.Store.Active(); ok {
		resp.Schema = &schema
	}
	return resp
}

// CreateSchema builds a new schema from the request, adding each element
// through the editor, then applies the save rules before storing it.
// The new schema becomes active.
func (h *SchemaHandler) CreateSchema(c *gin.Context) {
	var req models.SaveSchemaRequest
	if err := bindJSON(c, &req); err != nil {
		customLog.Warnf("CreateSchema binding error: %v", err)
		_ = c.Error(err)
		return
	}

	draft := h.Editor.NewSchemaDraft()
	draft.Name = req.Name
	draft.Color = req.Color
	draft.Category = req.Category
	draft.Description = req.Description

	for i, in := range req.Elements {
		var err error
		draft, err = h.Editor.AddElement(draft, in.ToDomain())
		if err != nil {
			customLog.Warnf("CreateSchema: element %d rejected: %v", i+1, err)
			_ = c.Error(fmt.Errorf("%w (element %d)", err, i+1))
			return
		}
	}

	if err := core.ValidateForSave(draft); err != nil {
		customLog.Warnf("CreateSchema: save rejected: %v", err)
		_ = c.Error(err)
		return
	}

	h.Store.Create(draft)
	customLog.Printf("Handler: Created schema '%s' (%s) with %d element(s)", draft.Name, draft.ID, len(draft.Elements))
	c.JSON(http.StatusCreated, draft)
}

// UpdateSchema replaces a schema's metadata and element list. Elements whose
// id matches an existing element keep that id and element_nr; others are
// added as new elements. The replacement is built against the stored schema
// under the store lock. Unknown schema ids are a no-op reported as updated=false.
func (h *SchemaHandler) UpdateSchema(c *gin.Context) {
	schemaID := c.Param("schema_id")

	var req models.SaveSchemaRequest
	if err := bindJSON(c, &req); err != nil {
		customLog.Warnf("UpdateSchema binding error: %v", err)
		_ = c.Error(err)
		return
	}

	replacement, err := h.Store.Modify(schemaID, func(current domain.Schema) (domain.Schema, error) {
		return h.buildReplacement(current, req)
	})
	if errors.Is(err, storage.ErrSchemaNotFound) {
		customLog.Printf("Handler: Update ignored, schema '%s' does not exist", schemaID)
		c.JSON(http.StatusOK, models.UpdateSchemaResponse{Updated: false})
		return
	}
	if err != nil {
		customLog.Warnf("UpdateSchema: schema '%s' rejected: %v", schemaID, err)
		_ = c.Error(err)
		return
	}

	customLog.Printf("Handler: Updated schema '%s' (%s)", replacement.Name, replacement.ID)
	c.JSON(http.StatusOK, models.UpdateSchemaResponse{Updated: true, Schema: &replacement})
}

func (h *SchemaHandler) buildReplacement(current domain.Schema, req models.SaveSchemaRequest) (domain.Schema, error) {
	out := domain.Schema{
		ID:          current.ID,
		Name:        req.Name,
		Color:       req.Color,
		Category:    req.Category,
		Description: req.Description,
		Elements:    make([]domain.Element, 0, len(req.Elements)),
	}

	kept := make(map[string]bool, len(req.Elements))
	for i, in := range req.Elements {
		partial := in.ToDomain()
		if idx := current.IndexOf(partial.ID); partial.ID != "" && idx >= 0 && !kept[partial.ID] {
			kept[partial.ID] = true
			if err := core.ValidateNewElement(partial); err != nil {
				return current, fmt.Errorf("%w (element %d)", err, i+1)
			}
			existing := current.Elements[idx]
			partial.ElementNr = existing.ElementNr
			partial.SchemaID = current.ID
			out.Elements = append(out.Elements, partial)
			continue
		}

		var err error
		out, err = h.Editor.AddElement(out, partial)
		if err != nil {
			return current, fmt.Errorf("%w (element %d)", err, i+1)
		}
	}

	if err := core.ValidateForSave(out); err != nil {
		return current, err
	}
	return out, nil
}

// DeleteSchema removes a schema. Unknown ids are ignored.
func (h *SchemaHandler) DeleteSchema(c *gin.Context) {
	schemaID := c.Param("schema_id")

	h.Store.Delete(schemaID)
	customLog.Printf("Handler: Deleted schema '%s'; active is now '%s'", schemaID, h.Store.ActiveID())
	c.Status(http.StatusNoContent)
}
