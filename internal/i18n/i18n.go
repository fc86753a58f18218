// Package i18n provides localized labels, backed by message files embedded
// into the binary.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Message is an alias for i18n.Message, so that users need not import go-i18n.
type Message = i18n.Message

// MessageFile is a message file given by its contents, e.g. one read from the
// config directory.
type MessageFile struct {
	Name    string
	Content []byte
}

// Provider provides messages in a single language, falling back to English.
type Provider struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      language.Tag
}

// NewProvider returns a provider for the given language (a BCP 47 tag such as
// "de" or "he-IL"), with the embedded message files and the given additional
// ones loaded.
func NewProvider(lang string, additional ...MessageFile) (*Provider, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("could not parse language '%s': %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFiles.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("could not read embedded message files: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("messages", entry.Name())
		content, err := messageFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("could not read embedded message file '%s': %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(content, name); err != nil {
			return nil, fmt.Errorf("could not parse embedded message file '%s': %w", name, err)
		}
	}
	for _, file := range additional {
		if _, err := bundle.ParseMessageFileBytes(file.Content, file.Name); err != nil {
			return nil, fmt.Errorf("could not parse message file '%s': %w", file.Name, err)
		}
	}

	log.Debug().Str("source", "i18n").Str("lang", tag.String()).Int("languages", len(bundle.LanguageTags())).Msg("loaded messages")
	return &Provider{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		lang:      tag,
	}, nil
}

// Language returns the provider's language.
func (p *Provider) Language() language.Tag { return p.lang }

// Languages returns the languages there are messages for.
func (p *Provider) Languages() []language.Tag { return p.bundle.LanguageTags() }

// MsgOrString returns the message for the key, or fallback if there is no
// message for the key.
func (p *Provider) MsgOrString(key, fallback string) string {
	msg, err := p.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return fallback
	}
	return msg
}

// Localize returns the given message in the provider's language, or the
// message's default text if there is no translation.
func (p *Provider) Localize(message *Message, templateData map[string]interface{}) string {
	msg, err := p.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   templateData,
	})
	if err != nil && msg == "" {
		return message.Other
	}
	return msg
}

// IsRtl reports whether the provider's language is written right-to-left.
func (p *Provider) IsRtl() bool {
	script, _ := p.lang.Script()
	switch script.String() {
	case "Arab", "Hebr", "Thaa", "Syrc", "Nkoo", "Adlm", "Mand", "Samr":
		return true
	}
	return false
}
