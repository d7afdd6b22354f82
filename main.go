package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"shadequote/catalog"
	"shadequote/collections"
	"shadequote/config"
	"shadequote/handlers"
	"shadequote/metrics"
	"shadequote/products"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()
	m := metrics.New()

	cache, err := catalog.NewCachedProvider(catalog.NewStore(app, cfg.Organization), cfg.CatalogCacheSize)
	if err != nil {
		log.Fatalf("catalog cache: %v", err)
	}
	sessions, err := handlers.NewSessionStore(cfg.SessionCacheSize)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	d := &handlers.Deps{
		App:      app,
		Registry: products.NewRegistry(),
		Sessions: sessions,
		Catalog:  cache,
		Metrics:  m,
		Config:   cfg,
	}

	// Create collections, seed the demo catalog and migrate old lines on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if cfg.Seed {
			if err := collections.Seed(app, cfg.Organization); err != nil {
				log.Printf("Warning: seed data failed: %v", err)
			}
		}
		if err := collections.MigrateMultiPanelMetadata(app); err != nil {
			log.Printf("Warning: panel metadata migration failed: %v", err)
		}
		return se.Next()
	})

	// Catalog edits invalidate cached lookups
	purge := func(e *core.RecordEvent) error {
		cache.Purge()
		return e.Next()
	}
	app.OnRecordAfterCreateSuccess(collections.CatalogItems).BindFunc(purge)
	app.OnRecordAfterUpdateSuccess(collections.CatalogItems).BindFunc(purge)
	app.OnRecordAfterDeleteSuccess(collections.CatalogItems).BindFunc(purge)

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Products ─────────────────────────────────────────────
		se.Router.GET("/products", handlers.HandleProductList(d))

		// ── Configurator sessions ───────────────────────────────
		se.Router.POST("/configurator/sessions", handlers.HandleSessionCreate(d))

		session := se.Router.Group("/configurator/sessions/{id}")
		session.BindFunc(handlers.SessionMiddleware(d))
		session.GET("", handlers.HandleSessionGet(d))
		session.GET("/step", handlers.HandleSessionStep(d))
		session.POST("/product-type", handlers.HandleSelectProductType(d))
		session.DELETE("/product-type", handlers.HandleDeselectProductType(d))
		session.PATCH("/config", handlers.HandleSessionUpdate(d))
		session.POST("/next", handlers.HandleSessionNext(d))
		session.POST("/back", handlers.HandleSessionBack(d))
		session.POST("/jump", handlers.HandleSessionJump(d))
		session.POST("/accessories", handlers.HandleSessionAccessory(d))
		session.GET("/bom", handlers.HandleSessionBOM(d))
		session.POST("/complete", handlers.HandleSessionComplete(d))

		// ── Quotes ──────────────────────────────────────────────
		se.Router.POST("/quotes", handlers.HandleQuoteCreate(d))
		se.Router.GET("/quotes/{quoteId}/totals", handlers.HandleQuoteTotals(d))
		se.Router.GET("/quotes/{quoteId}/lines/{lineId}/bom", handlers.HandleLineBOM(d))
		se.Router.GET("/quotes/{quoteId}/lines/{lineId}/export/excel", handlers.HandleLineExportExcel(d))

		// ── Metrics ─────────────────────────────────────────────
		se.Router.GET("/metrics", apis.WrapStdHandler(m.Handler()))

		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/products")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
