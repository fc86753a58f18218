package i18n_test

import (
	"testing"

	"github.com/ja-he/valueview/internal/i18n"
	"github.com/ja-he/valueview/internal/rotator"
)

func TestMsgOrString(t *testing.T) {
	for _, tc := range []struct {
		lang     string
		key      string
		expected string
	}{
		{"en", rotator.AutoMessageKey, "auto"},
		{"de", rotator.AutoMessageKey, "automatisch"},
		{"de-AT", rotator.AutoMessageKey, "automatisch"},
		{"he", "valueview-precision-day", "יום"},
		// missing translation falls back to English
		{"he", "valueview-precision-decade", "decade"},
		// unsupported language falls back to English
		{"fr", "valueview-calendar-julian", "Julian"},
		{"de", "no-such-key", "fallback"},
	} {
		t.Run(tc.lang+"/"+tc.key, func(t *testing.T) {
			p, err := i18n.NewProvider(tc.lang)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if got := p.MsgOrString(tc.key, "fallback"); got != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, got)
			}
		})
	}
}

func TestAdditionalMessageFiles(t *testing.T) {
	p, err := i18n.NewProvider("de", i18n.MessageFile{
		Name:    "custom.de.toml",
		Content: []byte(`valueview-listrotator-auto = "egal"`),
	})
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	if got := p.MsgOrString(rotator.AutoMessageKey, "auto"); got != "egal" {
		t.Error("additional message file did not override embedded one, got", got)
	}

	_, err = i18n.NewProvider("de", i18n.MessageFile{Name: "broken.de.toml", Content: []byte(`= =`)})
	if err == nil {
		t.Error("expected error for broken message file")
	}
}

func TestInvalidLanguage(t *testing.T) {
	if _, err := i18n.NewProvider("not a language tag"); err == nil {
		t.Error("expected error for invalid language tag")
	}
}

func TestLocalize(t *testing.T) {
	p, err := i18n.NewProvider("de")
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	got := p.Localize(&i18n.Message{ID: "valueview-test-greeting", Other: "Hello, {{.Name}}!"}, map[string]interface{}{"Name": "Ada"})
	if got != "Hello, Ada!" {
		t.Error("expected default message with template data, got", got)
	}
}

func TestIsRtl(t *testing.T) {
	for lang, expected := range map[string]bool{
		"en": false,
		"de": false,
		"he": true,
		"ar": true,
		"fa": true,
	} {
		p, err := i18n.NewProvider(lang)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if p.IsRtl() != expected {
			t.Errorf("expected rtl=%t for '%s'", expected, lang)
		}
	}
}
