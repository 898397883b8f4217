// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package i18n provides the translated strings of the user interface.
//
// Catalogs are embedded JSON files keyed by BCP 47 tags. Lookups fall back to
// English, and a key missing from every catalog is returned as-is.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// Fallback is used when the requested language has no catalog.
var Fallback = language.English

// Bundle holds every loaded catalog.
type Bundle struct {
	catalogs map[language.Tag]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
}

// NewBundle loads the embedded catalogs.
func NewBundle() (*Bundle, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	b := &Bundle{catalogs: make(map[language.Tag]map[string]string, len(entries))}
	tags := []language.Tag{Fallback}

	for _, entry := range entries {
		name := entry.Name()
		tag, err := language.Parse(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", name, err)
		}

		data, err := locales.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}

		catalog := make(map[string]string)
		if err = json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("decode locale %s: %w", name, err)
		}

		b.catalogs[tag] = catalog
		if tag != Fallback {
			tags = append(tags, tag)
		}
	}

	if _, ok := b.catalogs[Fallback]; !ok {
		return nil, fmt.Errorf("missing %s locale", Fallback)
	}

	b.tags = tags
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Languages returns the tags of the loaded catalogs, fallback first.
func (b *Bundle) Languages() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Match returns the best supported tag for a user preference such as "ru",
// "ru-RU" or the POSIX form "ru_RU.UTF-8".
func (b *Bundle) Match(lang string) language.Tag {
	desired, err := language.Parse(normalize(lang))
	if err != nil {
		return Fallback
	}

	_, idx, confidence := b.matcher.Match(desired)
	if confidence == language.No {
		return Fallback
	}
	return b.tags[idx]
}

// Translate returns the text for key in lang, formatted with args.
func (b *Bundle) Translate(lang language.Tag, key string, args ...any) string {
	text, ok := b.catalogs[lang][key]
	if !ok {
		text, ok = b.catalogs[Fallback][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Localizer binds a bundle to one language.
type Localizer struct {
	bundle *Bundle
	lang   language.Tag
}

// NewLocalizer returns a localizer for the best match of lang.
func NewLocalizer(bundle *Bundle, lang string) *Localizer {
	return &Localizer{bundle: bundle, lang: bundle.Match(lang)}
}

// Language returns the matched language.
func (l *Localizer) Language() language.Tag {
	return l.lang
}

// T translates key.
func (l *Localizer) T(key string, args ...any) string {
	return l.bundle.Translate(l.lang, key, args...)
}

// normalize turns POSIX locale names into BCP 47.
func normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(lang, "_", "-")
}
