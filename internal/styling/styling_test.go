package styling

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/valueview/internal/config"
)

func TestLighten(t *testing.T) {
	{
		testcase := "0% -> no change"

		input := colorful.Color{
			R: float64(0x12) / 255.0,
			G: float64(0x34) / 255.0,
			B: float64(0x56) / 255.0,
		}

		expected := input
		result := lightenColorfulColor(input, 0)

		if !result.AlmostEqualRgb(expected) {
			t.Fatalf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
	{
		testcase := "100% -> white"

		input := colorful.Color{
			R: float64(0x12) / 255.0,
			G: float64(0x34) / 255.0,
			B: float64(0x56) / 255.0,
		}

		expected := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
		result := lightenColorfulColor(input, 100)

		if !result.AlmostEqualRgb(expected) {
			t.Fatalf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
	{
		testcase := "50% -> 50% lighter"

		input := colorful.Color{
			R: float64(0x80) / 255.0,
			G: float64(0x80) / 255.0,
			B: float64(0x80) / 255.0,
		}

		expected := colorful.Color{
			R: float64(0xc0) / 255.0,
			G: float64(0xc0) / 255.0,
			B: float64(0xc0) / 255.0,
		}
		result := lightenColorfulColor(input, 50)

		if !result.AlmostEqualRgb(expected) {
			t.Fatalf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
}

func TestDarken(t *testing.T) {
	input := colorful.Color{R: 0.5, G: 0.5, B: 0.5}

	if result := darkenColorfulColor(input, 100); !result.AlmostEqualRgb(colorful.Color{}) {
		t.Errorf("expected black, got %s", result.Hex())
	}
	if result := darkenColorfulColor(input, 0); !result.AlmostEqualRgb(input) {
		t.Errorf("expected no change, got %s", result.Hex())
	}
}

func TestFade(t *testing.T) {
	fg := colorfulColorFromHexString("#ffffff")
	bg := colorfulColorFromHexString("#000000")

	if result := fadeColorfulColor(fg, bg, 1); result != fg {
		t.Errorf("opacity 1 changed the color to %s", result.Hex())
	}
	if result := fadeColorfulColor(fg, bg, 0); result != bg {
		t.Errorf("opacity 0 did not yield the background but %s", result.Hex())
	}
	if result := fadeColorfulColor(fg, bg, 1.5); result != fg {
		t.Errorf("opacity above 1 not clamped, got %s", result.Hex())
	}

	half := fadeColorfulColor(fg, bg, 0.5)
	_, _, l := half.Lab()
	if l < 0.45 || l > 0.55 {
		t.Errorf("expected half lightness at half opacity, got %f (%s)", l, half.Hex())
	}

	styled := StyleFromHex("#ffffff", "#000000").Faded(0)
	fgColor, bgColor, _ := styled.AsTcell().Decompose()
	if fgColor != bgColor {
		t.Error("fully faded foreground differs from background")
	}
}

func TestStyleFromConfig(t *testing.T) {
	styling, err := StyleFromConfig(config.Styling{Fg: "#ff0000", Bg: "#00ff00", Style: &config.FontStyle{Bold: true}})
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	fg, bg, attrs := styling.AsTcell().Decompose()
	if fg.Hex() != 0xff0000 || bg.Hex() != 0x00ff00 {
		t.Errorf("unexpected colors %06x %06x", fg.Hex(), bg.Hex())
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("expected bold")
	}

	if _, err := StyleFromConfig(config.Styling{Fg: "red", Bg: "#000000"}); err == nil {
		t.Error("expected error for invalid color")
	}
}

func TestNewStylesheetFromConfig(t *testing.T) {
	for _, theme := range []config.ColorschemeType{config.Dark, config.Light} {
		stylesheet, err := NewStylesheetFromConfig(config.Default(theme).Stylesheet)
		if err != nil {
			t.Fatal("default stylesheet invalid:", err.Error())
		}
		if stylesheet.Section == nil || stylesheet.Help == nil || stylesheet.MenuCustom == nil {
			t.Error("stylesheet incomplete")
		}
	}

	broken := config.Default(config.Dark).Stylesheet
	broken.Menu.Bg = "#nope"
	if _, err := NewStylesheetFromConfig(broken); err == nil {
		t.Error("expected error for invalid stylesheet")
	}
}
