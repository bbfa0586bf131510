package movies

import (
	"strings"

	"github.com/luchobalot/movies-api/internal/config"
	"golang.org/x/text/language"
)

func (s *Service) withDefaults(params ListParams) ListParams {
	if params.Page < 1 {
		params.Page = 1
	}
	params.Language = s.language(params.Language)
	params.Year = strings.TrimSpace(params.Year)
	if strings.TrimSpace(params.OrderBy) == "" {
		params.OrderBy = DefaultOrderBy
	}
	return params
}

func (s *Service) language(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = s.defaultLanguage
	}
	if lang == "" {
		lang = config.DefaultLanguage
	}
	return canonicalLanguage(lang)
}

// canonicalLanguage formats a BCP 47 tag the way TMDB expects it (es-es -> es-ES).
// Tags that don't parse are sent as they are.
func canonicalLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	return tag.String()
}
