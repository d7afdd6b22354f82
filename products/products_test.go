package products

import (
	"bytes"
	"context"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadequote/configurator"
)

func TestDefinitions_CoverEveryProductType(t *testing.T) {
	reg := NewRegistry()
	for _, pt := range configurator.ProductTypes {
		def, err := reg.Get(pt)
		require.NoError(t, err, pt)
		require.NotEmpty(t, def.Steps, pt)
		assert.Equal(t, StepReview, def.Steps[len(def.Steps)-1].ID, "%s ends with review", pt)
		assert.NotEmpty(t, def.Name)
		for _, s := range def.Steps {
			assert.NotNil(t, s.Render, "%s/%s has a panel", pt, s.ID)
		}
	}
}

func TestRollerShade_FullWalk(t *testing.T) {
	s := configurator.NewSession(NewRegistry())
	require.NoError(t, s.SelectProductType(configurator.TypeRollerShade, "pt"))

	patches := []map[string]any{
		{"widthM": 1.4, "heightM": 2.1},
		{"fabric": map[string]any{"collectionId": "screen", "variantId": "fab1"}},
		{"driveType": "motor", "motorFamily": "somfy", "tubeType": "45mm", "controlSide": "right"},
		{"hardwareColor": "white", "cassetteShape": "square"},
		{},
	}
	for i, patch := range patches {
		require.NoError(t, s.Update(patch))
		require.NoError(t, s.Next(), "step %d", i+1)
	}
	assert.Equal(t, 6, s.StepIndex())
	assert.Equal(t, StepReview, s.State().CurrentStep.ID)
}

func TestRollerShade_Rules(t *testing.T) {
	def := RollerShade()
	ok := func(stepID string, c *configurator.RollerShade) bool { return def.ValidateStep(stepID, c) }

	assert.False(t, ok(StepDimensions, &configurator.RollerShade{WidthM: 1}))
	assert.True(t, ok(StepDimensions, &configurator.RollerShade{WidthM: 1, HeightM: 1}))

	assert.False(t, ok(StepFabric, &configurator.RollerShade{}))

	motorNoFamily := &configurator.RollerShade{OperatingSystem: configurator.OperatingSystem{DriveType: configurator.DriveMotor, TubeType: "45mm"}}
	assert.False(t, ok(StepOperatingSystem, motorNoFamily))

	// A 70mm tube does not fit a round cassette.
	tooBig := &configurator.RollerShade{
		OperatingSystem: configurator.OperatingSystem{DriveType: configurator.DriveManual, TubeType: "70mm"},
		Hardware:        configurator.Hardware{HardwareColor: "black", CassetteShape: "round"},
	}
	assert.False(t, ok(StepOperatingSystem, tooBig))
	assert.False(t, ok(StepHardware, tooBig))
	tooBig.CassetteShape = "fascia"
	assert.True(t, ok(StepOperatingSystem, tooBig))
	assert.True(t, ok(StepHardware, tooBig))

	channelNoType := &configurator.RollerShade{Hardware: configurator.Hardware{HardwareColor: "white", SideChannel: true}}
	assert.False(t, ok(StepHardware, channelNoType))

	badAccessory := &configurator.RollerShade{Accessories: []configurator.AccessoryLine{{CatalogItemID: "a", Qty: 0}}}
	assert.False(t, ok(StepAccessories, badAccessory))
	assert.True(t, ok(StepAccessories, &configurator.RollerShade{}))

	assert.False(t, def.ValidateStep(StepDimensions, &configurator.Awning{}), "wrong variant never validates")
}

func TestDrapery_Rules(t *testing.T) {
	def := Drapery()
	c := &configurator.Drapery{HeightM: 2.5}
	assert.False(t, def.ValidateStep(StepPanels, c))

	c.Panels = []configurator.Panel{{WidthM: 1.2}, {WidthM: 0}}
	assert.False(t, def.ValidateStep(StepPanels, c), "every panel needs a width")
	c.Panels[1].WidthM = 1.2
	assert.True(t, def.ValidateStep(StepPanels, c))

	assert.True(t, def.ValidateStep(StepLining, c), "lining is optional")
	c.Lining = &configurator.FabricLayer{CollectionID: "lin"}
	assert.False(t, def.ValidateStep(StepLining, c))
	c.Lining.VariantID = "lin1"
	assert.True(t, def.ValidateStep(StepLining, c))

	c.OperatingSystem = configurator.OperatingSystem{DriveType: configurator.DriveManual}
	assert.True(t, def.ValidateStep(StepOperatingSystem, c), "tracks need no tube")
}

func TestWindowFilm_Rules(t *testing.T) {
	def := WindowFilm()
	c := &configurator.WindowFilm{Panels: []configurator.Panel{{WidthM: 0.9}}}
	assert.False(t, def.ValidateStep(StepPanels, c), "height is required")
	c.HeightM = 1.2
	assert.True(t, def.ValidateStep(StepPanels, c))
	assert.False(t, def.ValidateStep(StepFilm, c))
	c.Film.VariantID = "film1"
	assert.True(t, def.ValidateStep(StepFilm, c))
}

func TestAwning_Rules(t *testing.T) {
	def := Awning()
	c := &configurator.Awning{WidthM: 3, HeightM: 2}
	assert.True(t, def.ValidateStep(StepDimensions, c))
	assert.False(t, def.ValidateStep(StepFrame, c))
	c.HardwareColor = "anthracite"
	assert.True(t, def.ValidateStep(StepFrame, c))
}

func TestLayeredShades_OneStepPerFabric(t *testing.T) {
	dual := DualShade()
	d := &configurator.DualShade{FrontFabric: configurator.FabricLayer{VariantID: "f"}}
	assert.True(t, dual.ValidateStep(StepFrontFabric, d))
	assert.False(t, dual.ValidateStep(StepBackFabric, d))
	assert.False(t, dual.HasStep(StepMiddleFabric))
	d.BackFabric.VariantID = "b"
	assert.True(t, dual.ValidateStep(StepBackFabric, d))

	triple := TripleShade()
	tr := &configurator.TripleShade{
		FrontFabric: configurator.FabricLayer{VariantID: "f"},
		BackFabric:  configurator.FabricLayer{VariantID: "b"},
	}
	assert.False(t, triple.ValidateStep(StepMiddleFabric, tr))
	tr.MiddleFabric.VariantID = "m"
	assert.True(t, triple.ValidateStep(StepMiddleFabric, tr))
}

func TestStepPanelsRender(t *testing.T) {
	def := RollerShade()
	var buf bytes.Buffer
	require.NoError(t, def.Steps[0].Render.Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `data-step="dimensions"`)
	assert.Contains(t, buf.String(), `name="heightM"`)

	buf.Reset()
	require.NoError(t, def.Steps[len(def.Steps)-1].Render.Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Review Roller Shade")
}

var (
	inputPattern  = regexp.MustCompile(`<input type="(\w+)"[^>]*? name="([^"]+)"`)
	selectPattern = regexp.MustCompile(`<select name="([^"]+)"><option value="([^"]*)"`)
)

// formValues fills every input of a rendered step the way a browser form
// posting JSON would.
func formValues(t *testing.T, step configurator.Step) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, step.Render.Render(context.Background(), &buf))
	html := buf.String()

	values := map[string]any{}
	for _, m := range inputPattern.FindAllStringSubmatch(html, -1) {
		switch m[1] {
		case "number":
			values[m[2]] = 1.2
		case "checkbox":
			values[m[2]] = true
		default:
			values[m[2]] = "x"
		}
	}
	for _, m := range selectPattern.FindAllStringSubmatch(html, -1) {
		values[m[1]] = m[2]
	}
	return values
}

func TestRenderedFormsCompleteEveryProduct(t *testing.T) {
	registry := NewRegistry()
	for _, def := range Definitions() {
		t.Run(string(def.Type), func(t *testing.T) {
			s := configurator.NewSession(registry)
			require.NoError(t, s.SelectProductType(def.Type, ""))

			for i, st := range def.Steps {
				require.Equal(t, i+1, s.StepIndex())
				require.NoError(t, s.Update(formValues(t, st)), "step %s", st.ID)
				require.True(t, s.CanProceed(), "step %s not satisfied by its own form", st.ID)
				if i < len(def.Steps)-1 {
					require.NoError(t, s.Next())
				}
			}
		})
	}
}

func TestPanelStepsFillPanelList(t *testing.T) {
	s := configurator.NewSession(NewRegistry())
	require.NoError(t, s.SelectProductType(configurator.TypeDrapery, ""))
	require.NoError(t, s.Update(formValues(t, Drapery().Steps[0])))

	d := s.Config().(*configurator.Drapery)
	assert.Len(t, d.Panels, panelSlots)
	assert.InDelta(t, 1.2*panelSlots, configurator.TotalWidth(d.Panels), 1e-9)
}

func TestSessionStepIndexStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	registry := NewRegistry()

	for _, def := range Definitions() {
		t.Run(string(def.Type), func(t *testing.T) {
			n := len(def.Steps)
			for trial := 0; trial < 40; trial++ {
				s := configurator.NewSession(registry)
				require.NoError(t, s.SelectProductType(def.Type, ""))
				want := 1

				for op := 0; op < 50; op++ {
					switch rng.Intn(4) {
					case 0:
						if want >= 1 {
							require.NoError(t, s.Update(formValues(t, def.Steps[want-1])))
						}
					case 1:
						can := s.CanProceed()
						err := s.Next()
						switch {
						case want == 0:
							require.NoError(t, err)
							want = 1
						case want >= n:
							require.NoError(t, err)
						case can:
							require.NoError(t, err)
							want++
						default:
							require.ErrorIs(t, err, configurator.ErrCannotAdvance)
						}
					case 2:
						require.NoError(t, s.Back())
						if want > 0 {
							want--
						}
					case 3:
						target := rng.Intn(n+3) - 1
						err := s.JumpTo(target)
						if target >= 1 && target <= want {
							require.NoError(t, err)
							want = target
						} else {
							require.ErrorIs(t, err, configurator.ErrInvalidJump)
						}
					}

					got := s.StepIndex()
					require.Equal(t, want, got)
					require.GreaterOrEqual(t, got, 0)
					require.LessOrEqual(t, got, n)
					require.NotNil(t, s.Config(), "leaving a step never drops the product type")

					st := s.State()
					if got == 0 {
						assert.True(t, st.Selecting)
						assert.Nil(t, st.CurrentStep)
						continue
					}
					require.NotNil(t, st.CurrentStep)
					assert.Equal(t, def.Steps[got-1].ID, st.CurrentStep.ID)
				}
			}
		})
	}
}

func TestSelectingAnotherTypeLeavesNoFields(t *testing.T) {
	registry := NewRegistry()
	defs := Definitions()

	for _, first := range defs {
		for _, second := range defs {
			t.Run(string(first.Type)+"/"+string(second.Type), func(t *testing.T) {
				s := configurator.NewSession(registry)
				require.NoError(t, s.SelectProductType(first.Type, "pt-first"))
				for _, st := range first.Steps {
					require.NoError(t, s.Update(formValues(t, st)))
				}
				require.NoError(t, s.Update(map[string]any{"area": "Kitchen", "position": 4, "quantity": 3}))

				require.NoError(t, s.SelectProductType(second.Type, "pt-second"))

				want := configurator.NewConfig(second.Type)
				base := want.Base()
				base.ProductTypeID = "pt-second"
				base.Area = "Kitchen"
				base.Position = 4
				base.Quantity = 3
				want, err := configurator.Clone(want)
				require.NoError(t, err)

				assert.Equal(t, want, s.Config())
				assert.Empty(t, configurator.AccessoriesOf(s.Config()))
				assert.Equal(t, 1, s.StepIndex())
			})
		}
	}
}
