package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/collections"
	"shadequote/quotes"
	"shadequote/services"
)

type completeRequest struct {
	QuoteID string `json:"quoteId"`
}

type completeResponse struct {
	SessionID string  `json:"sessionId"`
	QuoteID   string  `json:"quoteId"`
	LineID    string  `json:"lineId"`
	LineTotal float64 `json:"lineTotal"`
}

// HandleSessionComplete hands the finished configuration to the quote sink.
// The quoteId in the body overrides the one given at session creation. On
// success the session is dropped from the store.
func HandleSessionComplete(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		entry, ok, err := requireSession(e)
		if !ok {
			return err
		}
		var req completeRequest
		if err := bindJSON(e, &req); err != nil {
			return respondError(e, err)
		}
		quoteID := req.QuoteID
		if quoteID == "" {
			quoteID = entry.QuoteID
		}
		if quoteID == "" {
			return respondError(e, &badRequestError{msg: "quoteId is required"})
		}

		sink := &quotes.Sink{
			App:      d.App,
			Provider: d.Catalog,
			QuoteID:  quoteID,
			LineID:   entry.LineID,
		}
		if err := entry.Session.Complete(e.Request.Context(), sink); err != nil {
			return respondError(e, err)
		}

		d.recordSessionEvent("completed")
		if d.Metrics != nil {
			d.Metrics.RecordQuoteLine()
		}
		d.Sessions.Remove(entry.ID)
		log.Printf("complete: session %s saved line %s on quote %s", entry.ID, sink.Saved.Id, quoteID)

		return e.JSON(http.StatusOK, completeResponse{
			SessionID: entry.ID,
			QuoteID:   quoteID,
			LineID:    sink.Saved.Id,
			LineTotal: sink.Saved.GetFloat("line_total"),
		})
	}
}

type createQuoteRequest struct {
	CustomerName string `json:"customerName" validate:"max=200"`
}

type quoteResponse struct {
	ID              string `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`
	CustomerName    string `json:"customerName,omitempty"`
	Status          string `json:"status"`
}

// HandleQuoteCreate creates a draft quote with the next reference number.
func HandleQuoteCreate(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req createQuoteRequest
		if err := bindJSON(e, &req); err != nil {
			return respondError(e, err)
		}

		org := ""
		if d.Config != nil {
			org = d.Config.Organization
		}
		ref, err := services.GenerateQuoteNumber(d.App, org, time.Now())
		if err != nil {
			return respondError(e, err)
		}

		col, err := d.App.FindCollectionByNameOrId(collections.Quotes)
		if err != nil {
			return respondError(e, err)
		}
		record := core.NewRecord(col)
		record.Set("organization", org)
		record.Set("reference_number", ref)
		record.Set("customer_name", req.CustomerName)
		record.Set("status", "draft")
		if err := d.App.Save(record); err != nil {
			return respondError(e, err)
		}

		return e.JSON(http.StatusCreated, quoteResponse{
			ID:              record.Id,
			ReferenceNumber: ref,
			CustomerName:    req.CustomerName,
			Status:          "draft",
		})
	}
}

type totalsResponse struct {
	QuoteID          string  `json:"quoteId"`
	Lines            int     `json:"lines"`
	ProductTotal     float64 `json:"productTotal"`
	AccessoriesTotal float64 `json:"accessoriesTotal"`
	Total            float64 `json:"total"`
	Formatted        string  `json:"formatted"`
}

// HandleQuoteTotals sums the persisted lines of a quote.
func HandleQuoteTotals(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		totals, err := quotes.Totals(d.App, quoteID)
		if err != nil {
			return respondError(e, err)
		}
		return e.JSON(http.StatusOK, totalsResponse{
			QuoteID:          quoteID,
			Lines:            totals.Lines,
			ProductTotal:     totals.ProductTotal,
			AccessoriesTotal: totals.AccessoriesTotal,
			Total:            totals.Total,
			Formatted:        services.FormatMoney(totals.Total, d.currency()),
		})
	}
}

func (d *Deps) currency() string {
	if d.Config != nil {
		return d.Config.Currency
	}
	return ""
}
