package icu

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/ar_AE"
	"github.com/go-playground/locales/bo"
	"github.com/go-playground/locales/bo_CN"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/he"
	"github.com/go-playground/locales/he_IL"
	"github.com/go-playground/locales/hi"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ja_JP"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/puzpuzpuz/xsync/v3"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

const rootLocale = "en_US"

var (
	root      = en.New()
	universal = ut.New(root,
		root, en_US.New(), en_GB.New(),
		ar.New(), ar_AE.New(),
		bo.New(), bo_CN.New(),
		de.New(), de_DE.New(),
		es.New(), es_ES.New(),
		fr.New(), fr_FR.New(),
		he.New(), he_IL.New(),
		hi.New(),
		ja.New(), ja_JP.New(),
		ru.New(),
		zh.New(),
	)

	// keyed by locale data name and calendar, so its size is bounded
	localeCache = xsync.NewMapOf[string, *Locale]()

	defaultLocaleMu sync.RWMutex
	defaultLocale   = rootLocale
)

// icuCalendarTypes maps ICU calendar keyword values to their BCP 47 types
// where the two differ.
var icuCalendarTypes = map[string]string{
	"gregorian":           "gregory",
	"ethiopic-amete-alem": "ethioaa",
}

// knownCalendars are the CLDR calendar types. Other values of the calendar
// keyword select the Gregorian calendar.
var knownCalendars = map[string]bool{
	"buddhist": true, "chinese": true, "coptic": true, "dangi": true,
	"ethioaa": true, "ethiopic": true, "gregory": true, "hebrew": true,
	"indian": true, "islamic": true, "islamic-civil": true, "islamicc": true,
	"islamic-rgsa": true, "islamic-tbla": true, "islamic-umalqura": true,
	"iso8601": true, "japanese": true, "persian": true, "roc": true,
}

// icuKeywords maps ICU locale keywords to BCP 47 -u- extension keys.
var icuKeywords = map[string]string{
	"calendar":  "ca",
	"collation": "co",
	"currency":  "cu",
	"numbers":   "nu",
}

// Locale is a resolved locale. Every id resolving to the same locale data
// and calendar shares one Locale.
type Locale struct {
	// ID is the ICU id of the resolved locale, e.g. ar_AE@calendar=islamic.
	ID string
	// Tag is the BCP 47 form of ID.
	Tag language.Tag
	// Calendar is the BCP 47 calendar type, empty when unspecified.
	Calendar string

	translator locales.Translator
	status     ErrorCode
}

// Name returns the name of the locale data actually serving this locale.
func (l *Locale) Name() string { return l.translator.Locale() }

// Language returns the language of the locale data serving this locale.
func (l *Locale) Language() string {
	lang, _, _ := strings.Cut(l.Name(), "_")
	return lang
}

// Translator returns the CLDR data for this locale.
func (l *Locale) Translator() locales.Translator { return l.translator }

// Gregorian reports whether dates in this locale use the Gregorian calendar.
func (l *Locale) Gregorian() bool {
	return l.Calendar == "" || l.Calendar == "gregory"
}

// SetDefaultLocale replaces the locale used for empty locale ids.
func SetDefaultLocale(id string) {
	defaultLocaleMu.Lock()
	defer defaultLocaleMu.Unlock()
	if id == "" {
		id = rootLocale
	}
	defaultLocale = id
}

// DefaultLocale returns the locale used for empty locale ids.
func DefaultLocale() string {
	defaultLocaleMu.RLock()
	defer defaultLocaleMu.RUnlock()
	return defaultLocale
}

// ResolveLocale resolves an ICU locale id (en_US, ar_AE@calendar=islamic) or
// a BCP 47 tag to the locale data serving it. The status is
// U_USING_DEFAULT_WARNING when only the root data matched.
func ResolveLocale(id string) (*Locale, ErrorCode) {
	if id == "" {
		id = DefaultLocale()
	}

	bcp, err := toBCP47(id)
	if err != nil {
		zlog.Debug().Msgf("Malformed locale[%s]: %v", id, err)
		return nil, U_ILLEGAL_ARGUMENT_ERROR
	}
	tag, err := language.Parse(bcp)
	if err != nil {
		var verr interface{ Subtag() string }
		if !errors.As(err, &verr) {
			zlog.Debug().Msgf("Malformed locale[%s]: %v", id, err)
			return nil, U_ILLEGAL_ARGUMENT_ERROR
		}
		zlog.Debug().Msgf("Locale[%s] has unknown subtag[%s]", id, verr.Subtag())
	}

	base, _, region := tag.Raw()
	var candidates []string
	if r := region.String(); r != "ZZ" {
		candidates = append(candidates, base.String()+"_"+r)
	}
	candidates = append(candidates, base.String())

	calendar := tag.TypeForKey("ca")
	if calendar != "" && !knownCalendars[calendar] {
		zlog.Debug().Msgf("Locale[%s] has unknown calendar[%s], using gregorian", id, calendar)
		calendar = ""
	}

	trans, found := universal.FindTranslator(candidates...)
	loc, _ := localeCache.LoadOrCompute(cacheKey(trans.Locale(), calendar, found), func() *Locale {
		if !found {
			zlog.Warn().Msgf("No locale data for [%s], using root", id)
		}
		return newLocale(trans, calendar, found)
	})
	return loc, loc.status
}

func cacheKey(name, calendar string, found bool) string {
	key := name + "@" + calendar
	if !found {
		key += "!"
	}
	return key
}

func newLocale(trans locales.Translator, calendar string, found bool) *Locale {
	loc := &Locale{
		ID:         trans.Locale(),
		Calendar:   calendar,
		translator: trans,
		status:     U_ZERO_ERROR,
	}
	bcp := strings.ReplaceAll(loc.ID, "_", "-")
	if calendar != "" {
		icuType := calendar
		for k, v := range icuCalendarTypes {
			if v == calendar {
				icuType = k
			}
		}
		loc.ID += "@calendar=" + icuType
		bcp += "-u-ca-" + calendar
	}
	loc.Tag = language.Make(bcp)
	if !found {
		loc.status = U_USING_DEFAULT_WARNING
	}
	return loc
}

func toBCP47(id string) (string, error) {
	base, keywords, _ := strings.Cut(id, "@")
	base = strings.ReplaceAll(strings.TrimSpace(base), "_", "-")
	if base == "" {
		base = "und"
	}

	var ext []string
	for _, kv := range strings.Split(keywords, ";") {
		if strings.TrimSpace(kv) == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return "", errors.Newf("keyword %q has no value", kv)
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.ToLower(strings.TrimSpace(v))
		key, known := icuKeywords[k]
		if !known {
			continue
		}
		if key == "ca" {
			if t, ok := icuCalendarTypes[v]; ok {
				v = t
			}
		}
		ext = append(ext, key, v)
	}
	if len(ext) > 0 {
		base += "-u-" + strings.Join(ext, "-")
	}
	return base, nil
}
