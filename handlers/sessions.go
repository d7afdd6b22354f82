package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"

	"shadequote/collections"
	"shadequote/configurator"
	"shadequote/quotes"
	"shadequote/views"
)

type createSessionRequest struct {
	QuoteID  string `json:"quoteId"`
	LineID   string `json:"lineId"`
	Position *int   `json:"position" validate:"omitempty,gte=0"`
}

type selectProductTypeRequest struct {
	ProductType   string `json:"productType" validate:"required"`
	ProductTypeID string `json:"productTypeId"`
}

type jumpRequest struct {
	Index int `json:"index" validate:"gte=0"`
}

// sessionResponse is the JSON view of a session.
type sessionResponse struct {
	ID      string `json:"id"`
	QuoteID string `json:"quoteId,omitempty"`
	LineID  string `json:"lineId,omitempty"`
	configurator.SessionState
}

func writeSession(e *core.RequestEvent, status int, entry *SessionEntry) error {
	return e.JSON(status, sessionResponse{
		ID:           entry.ID,
		QuoteID:      entry.QuoteID,
		LineID:       entry.LineID,
		SessionState: entry.Session.State(),
	})
}

// HandleSessionCreate starts a wizard session. With a lineId the stored
// line is loaded and the session opens on its first step.
func HandleSessionCreate(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req createSessionRequest
		if err := bindJSON(e, &req); err != nil {
			return respondError(e, err)
		}

		var opts []configurator.SessionOption
		if req.LineID != "" {
			record, cfg, err := quotes.LoadLine(d.App, req.QuoteID, req.LineID)
			if err != nil {
				return respondError(e, err)
			}
			if req.QuoteID == "" {
				req.QuoteID = record.GetString("quote")
			}
			opts = append(opts, configurator.WithInitialConfig(cfg))
		}
		if req.Position != nil {
			opts = append(opts, configurator.WithPosition(*req.Position))
		}

		entry := d.Sessions.Add(configurator.NewSession(d.Registry, opts...), req.QuoteID, req.LineID)
		d.recordSessionEvent("created")
		return writeSession(e, http.StatusCreated, entry)
	}
}

// HandleSessionGet returns the session state.
func HandleSessionGet(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		return writeSession(e, http.StatusOK, entry)
	}
}

// HandleSessionStep renders the current step as HTML. While the session is
// on the type selection the product picker is rendered instead.
func HandleSessionStep(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		state := entry.Session.State()

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		if state.CurrentStep == nil || state.CurrentStep.Render == nil {
			var options []views.ProductOption
			for _, def := range d.Registry.Definitions() {
				options = append(options, views.ProductOption{Type: string(def.Type), Name: def.Name})
			}
			return views.ProductTypePanel(options).Render(e.Request.Context(), e.Response)
		}
		return state.CurrentStep.Render.Render(e.Request.Context(), e.Response)
	}
}

// HandleSelectProductType chooses the product type. A missing productTypeId
// is resolved from the product_types collection.
func HandleSelectProductType(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		var req selectProductTypeRequest
		if err := bindJSON(e, &req); err != nil {
			return respondError(e, err)
		}

		t := configurator.ProductType(req.ProductType)
		if !t.Valid() {
			return respondError(e, &configurator.UnknownProductTypeError{Type: req.ProductType})
		}
		productTypeID := req.ProductTypeID
		if productTypeID == "" {
			productTypeID = lookupProductTypeID(d.App, t)
		}

		if err := entry.Session.SelectProductType(t, productTypeID); err != nil {
			return respondError(e, err)
		}
		return writeSession(e, http.StatusOK, entry)
	}
}

func lookupProductTypeID(app core.App, t configurator.ProductType) string {
	record := &core.Record{}
	err := app.RecordQuery(collections.ProductTypes).
		AndWhere(dbx.HashExp{"key": string(t)}).
		Limit(1).
		One(record)
	if err != nil {
		log.Printf("sessions: lookupProductTypeID: %s: %v", t, err)
		return ""
	}
	return record.Id
}

// HandleDeselectProductType returns the session to the type selection.
func HandleDeselectProductType(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		if err := entry.Session.DeselectProductType(); err != nil {
			return respondError(e, err)
		}
		return writeSession(e, http.StatusOK, entry)
	}
}

// HandleSessionUpdate merges a JSON object of field values into the
// configuration.
func HandleSessionUpdate(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		fields := map[string]any{}
		if err := bindJSON(e, &fields); err != nil {
			return respondError(e, err)
		}
		if err := entry.Session.Update(fields); err != nil {
			return respondError(e, err)
		}
		return writeSession(e, http.StatusOK, entry)
	}
}

// HandleSessionNext, HandleSessionBack and HandleSessionJump move through
// the steps.
func HandleSessionNext(d *Deps) func(*core.RequestEvent) error {
	return navigate(func(s *configurator.Session, _ *core.RequestEvent) error {
		return s.Next()
	})
}

func HandleSessionBack(d *Deps) func(*core.RequestEvent) error {
	return navigate(func(s *configurator.Session, _ *core.RequestEvent) error {
		return s.Back()
	})
}

func HandleSessionJump(d *Deps) func(*core.RequestEvent) error {
	return navigate(func(s *configurator.Session, e *core.RequestEvent) error {
		var req jumpRequest
		if err := bindJSON(e, &req); err != nil {
			return err
		}
		return s.JumpTo(req.Index)
	})
}

func navigate(move func(*configurator.Session, *core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		if err := move(entry.Session, e); err != nil {
			return respondError(e, err)
		}
		return writeSession(e, http.StatusOK, entry)
	}
}

type accessoryRequest struct {
	CatalogItemID string `json:"catalogItemId" validate:"required"`
	Qty           *int   `json:"qty" validate:"omitempty,gte=0"`
	Op            string `json:"op" validate:"omitempty,oneof=add set"`
}

// HandleSessionAccessory adds an accessory (op "add", the default) or sets
// its quantity (op "set", zero removes it). Added items are priced from the
// catalog.
func HandleSessionAccessory(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		var req accessoryRequest
		if err := bindJSON(e, &req); err != nil {
			return respondError(e, err)
		}

		if req.Op == "set" {
			if req.Qty == nil {
				return respondError(e, &badRequestError{msg: "qty is required to set an accessory quantity"})
			}
			if err := entry.Session.SetAccessoryQty(req.CatalogItemID, *req.Qty); err != nil {
				return respondError(e, err)
			}
			return writeSession(e, http.StatusOK, entry)
		}

		qty := 1
		if req.Qty != nil {
			qty = *req.Qty
		}
		item, err := d.Catalog.FindItemByID(e.Request.Context(), req.CatalogItemID)
		if err != nil {
			return respondError(e, fmt.Errorf("accessory %s: %w", req.CatalogItemID, err))
		}
		if item == nil {
			return respondError(e, &badRequestError{msg: fmt.Sprintf("catalog item %q not found", req.CatalogItemID)})
		}
		line := configurator.AccessoryLine{
			CatalogItemID: item.ID,
			Name:          item.Name,
			Qty:           qty,
			UnitPrice:     item.UnitPrice,
		}
		if err := validate.Struct(line); err != nil {
			return respondError(e, err)
		}
		if err := entry.Session.AddAccessory(line); err != nil {
			return respondError(e, err)
		}
		return writeSession(e, http.StatusOK, entry)
	}
}
