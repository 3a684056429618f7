// Package i18n resolves display languages and serves translation catalogs.
// Catalogs are plain JSON files (<lang>.json, a flat string-to-string map)
// read from an afero filesystem so tests can use an in-memory one.
package i18n

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage is the language used when nothing else resolves.
const DefaultLanguage = "en"

// Language describes one available display language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Service holds the loaded catalogs and the matcher built over them.
type Service struct {
	catalogs map[string]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	list     []Language
}

// NewService loads every catalog in dir. The default language is always
// available even without a catalog file; its translation data is empty
// because source strings are already in the default language.
func NewService(fs afero.Fs, dir string) (*Service, error) {
	s := &Service{
		catalogs: map[string]map[string]string{
			DefaultLanguage: {},
		},
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations dir %q: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		code := strings.TrimSuffix(entry.Name(), ".json")
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("invalid language code %q: %w", code, err)
		}

		data, err := afero.ReadFile(fs, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %q: %w", code, err)
		}
		catalog := map[string]string{}
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %q: %w", code, err)
		}
		s.catalogs[code] = catalog
	}

	codes := make([]string, 0, len(s.catalogs))
	for code := range s.catalogs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	// The matcher's first tag is the fallback, so the default language
	// goes first regardless of sort order.
	s.tags = append(s.tags, language.MustParse(DefaultLanguage))
	for _, code := range codes {
		if code == DefaultLanguage {
			continue
		}
		s.tags = append(s.tags, language.MustParse(code))
	}
	s.matcher = language.NewMatcher(s.tags)

	namer := display.Self
	for _, code := range codes {
		tag := language.MustParse(code)
		s.list = append(s.list, Language{Code: code, Name: namer.Name(tag)})
	}

	return s, nil
}

// ListLanguages returns the available languages sorted by code.
func (s *Service) ListLanguages() []Language {
	return s.list
}

// Supported reports whether a catalog exists for the given code.
func (s *Service) Supported(code string) bool {
	_, ok := s.catalogs[code]
	return ok
}

// ResolveLanguage picks the effective display language. A valid, supported
// path-embedded language wins over the user's registered default; an
// unusable path language falls back to the default; and when neither
// resolves, the best match from the matcher (ultimately DefaultLanguage)
// is used.
func (s *Service) ResolveLanguage(pathLanguage, userDefault string) string {
	if pathLanguage != "" && s.Supported(pathLanguage) {
		return pathLanguage
	}
	if s.Supported(userDefault) {
		return userDefault
	}
	if userDefault != "" {
		if tag, err := language.Parse(userDefault); err == nil {
			matched, _, conf := s.matcher.Match(tag)
			if conf >= language.High {
				if base, confBase := matched.Base(); confBase >= language.High {
					if s.Supported(base.String()) {
						return base.String()
					}
				}
			}
		}
	}
	return DefaultLanguage
}

// TranslationData returns the catalog for a language. Unknown languages get
// an empty catalog rather than an error; the client then falls back to
// source strings.
func (s *Service) TranslationData(code string) map[string]string {
	if catalog, ok := s.catalogs[code]; ok {
		return catalog
	}
	return map[string]string{}
}
