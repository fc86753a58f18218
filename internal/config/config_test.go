package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ja-he/valueview/internal/config"
	"github.com/ja-he/valueview/internal/rotator"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty yields defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte{})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		defaults := config.Default(config.Dark)
		if c.Stylesheet.Section.Fg != defaults.Stylesheet.Section.Fg || c.Stylesheet.Section.Bg != defaults.Stylesheet.Section.Bg {
			t.Error("stylesheet differs from defaults")
		}
		if len(c.Lists) != len(defaults.Lists) {
			t.Error("lists differ from defaults")
		}
		animation, err := c.Rotator.AnimationOptions()
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if animation.Duration != 150*time.Millisecond || animation.FrameInterval != 30*time.Millisecond || animation.Margins != [2]int{-2, 2} {
			t.Error("unexpected default animation options", animation)
		}
	})

	t.Run("augments", func(t *testing.T) {
		yamlData := []byte(`
stylesheet:
  section:
    fg: "#123456"
    bg: "#654321"
    style:
      bold: true
rotator:
  duration: 1s
  rtl: true
  menu:
    my: right top
    at: right bottom
lists:
  - name: size
    values:
      - value: s
        label: small
      - value: l
        label-key: valueview-size-large
keys:
  rotator:
    n: next
    l: ""
`)
		c, err := config.ParseConfigAugmentDefaults(config.Light, yamlData)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}

		if c.Stylesheet.Section.Fg != "#123456" || c.Stylesheet.Section.Bg != "#654321" || !c.Stylesheet.Section.Style.Bold {
			t.Error("section styling not augmented:", c.Stylesheet.Section)
		}
		if c.Stylesheet.Menu.Fg != config.Default(config.Light).Stylesheet.Menu.Fg {
			t.Error("menu styling changed")
		}

		animation, err := c.Rotator.AnimationOptions()
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if animation.Duration != time.Second || animation.FrameInterval != 30*time.Millisecond {
			t.Error("unexpected animation options", animation)
		}
		if c.Rotator.Rtl == nil || !*c.Rotator.Rtl {
			t.Error("rtl not set")
		}
		if c.Rotator.Locale != "en" {
			t.Error("locale default lost")
		}
		if position := c.Rotator.MenuOptions().Position; position.My != "right top" || position.At != "right bottom" {
			t.Error("unexpected menu position", position)
		}

		if len(c.Lists) != 1 || c.Lists[0].Name != "size" {
			t.Fatal("lists not replaced:", c.Lists)
		}
		items := c.Lists[0].Items(labels{"valueview-size-large": "LARGE"})
		expected := []rotator.Item[string]{{Value: "s", Label: "small"}, {Value: "l", Label: "LARGE"}}
		for i := range expected {
			if items[i] != expected[i] {
				t.Error("expected", expected[i], "got", items[i])
			}
		}

		if c.Keys.Rotator["n"] != "next" {
			t.Error("key mapping not added")
		}
		if _, ok := c.Keys.Rotator["l"]; ok {
			t.Error("key mapping not removed")
		}
		if c.Keys.Rotator["h"] != "prev" {
			t.Error("default key mapping lost")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("stylesheet: [")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		if _, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("rotator:\n  duration: soon\n")); err == nil {
			t.Error("expected error")
		}
		if _, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("rotator:\n  frame-interval: 0s\n")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("zero margins and duration", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("rotator:\n  margins: [0, 0]\n  duration: 0s\n"))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		animation, err := c.Rotator.AnimationOptions()
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !animation.Static || animation.Margins != [2]int{} {
			t.Error("expected static labels for zero margins, got", animation)
		}
		if animation.Duration != rotator.NoDuration {
			t.Error("expected no duration for zero duration, got", animation.Duration)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("lists:\n  - name: nothing\n"))
		if !errors.Is(err, rotator.ErrNoValues) {
			t.Error("expected ErrNoValues, got", err)
		}
	})

}

type labels map[string]string

func (l labels) MsgOrString(key, fallback string) string {
	if msg, ok := l[key]; ok {
		return msg
	}
	return fallback
}
