package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"shadequote/catalog"
	"shadequote/config"
	"shadequote/configurator"
	"shadequote/metrics"
	"shadequote/products"
	"shadequote/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app core.App, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestDeps wires the handlers against a fresh test app.
func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	app := testhelpers.NewTestApp(t)
	sessions, err := NewSessionStore(16)
	if err != nil {
		t.Fatalf("NewSessionStore: %v", err)
	}
	return &Deps{
		App:      app,
		Registry: products.NewRegistry(),
		Sessions: sessions,
		Catalog:  catalog.NewStore(app, ""),
		Metrics:  metrics.New(),
		Config:   &config.Config{Currency: "₹"},
	}
}

// rollerFixture is a small roller shade catalog.
type rollerFixture struct {
	ProductTypeID string
	FabricID      string
	AccessoryID   string
}

// seedRollerShade creates a roller shade catalog: fabric 1000/m on a 2.5m
// roll, 45mm tube 300/m, chain control 500 and a 240 bracket.
func seedRollerShade(t *testing.T, app core.App) rollerFixture {
	t.Helper()
	pt := testhelpers.CreateTestProductType(t, app, "roller-shade", "Roller Shade")
	fabric := testhelpers.CreateTestCatalogItem(t, app, testhelpers.CatalogItemSpec{
		ProductTypeID: pt.Id, SKU: "RS-FAB", Name: "Screen 5%", Category: "fabric",
		MeasureBasis: "fabric", RollWidthM: 2.5, UnitPrice: 1000, UOM: "m",
	})
	testhelpers.CreateTestCatalogItem(t, app, testhelpers.CatalogItemSpec{
		ProductTypeID: pt.Id, SKU: "RS-TUBE-45", Category: "tube", Option: "45mm",
		MeasureBasis: "linear_m", UnitPrice: 300, UOM: "m",
	})
	testhelpers.CreateTestCatalogItem(t, app, testhelpers.CatalogItemSpec{
		ProductTypeID: pt.Id, SKU: "RS-CHAIN", Category: "control",
		MeasureBasis: "unit", UnitPrice: 500, UOM: "set",
	})
	acc := testhelpers.CreateTestCatalogItem(t, app, testhelpers.CatalogItemSpec{
		ProductTypeID: pt.Id, SKU: "RS-BRKT", Name: "Extension bracket", Category: "accessory",
		MeasureBasis: "unit", UnitPrice: 240,
	})
	return rollerFixture{ProductTypeID: pt.Id, FabricID: fabric.Id, AccessoryID: acc.Id}
}

// rollerConfig is a complete 1.2m x 1.5m manual roller shade.
func rollerConfig(fx rollerFixture) *configurator.RollerShade {
	c := configurator.NewConfig(configurator.TypeRollerShade).(*configurator.RollerShade)
	c.ProductTypeID = fx.ProductTypeID
	c.Quantity = 1
	c.Area = "Living room"
	c.WidthM = 1.2
	c.HeightM = 1.5
	c.Fabric = configurator.FabricLayer{CollectionID: "screen", VariantID: fx.FabricID}
	c.OperatingSystem = configurator.OperatingSystem{
		DriveType:   configurator.DriveManual,
		TubeType:    "45mm",
		ControlSide: "left",
	}
	c.Hardware = configurator.Hardware{HardwareColor: "white"}
	return c
}

// withSession puts entry into the request context the way
// SessionMiddleware does.
func withSession(req *http.Request, entry *SessionEntry) *http.Request {
	req.SetPathValue("id", entry.ID)
	return req.WithContext(context.WithValue(req.Context(), SessionKey, entry))
}
