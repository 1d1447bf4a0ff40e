package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// pattern describes one locale's rendering: a layout with {day}, {month},
// {year} and {time} placeholders plus its abbreviated month names.
type pattern struct {
	layout string
	months [12]string
}

// localeDef order matters: index 0 is the fallback, and matcher indexes map
// back into this slice.
var localeDefs = []struct {
	tag string
	p   pattern
}{
	{"en", pattern{
		layout: "{month} {day}, {year}, {time}",
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	}},
	{"en-GB", pattern{
		layout: "{day} {month} {year}, {time}",
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	}},
	{"de", pattern{
		layout: "{day}. {month} {year}, {time}",
		months: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	}},
	{"fr", pattern{
		layout: "{day} {month} {year}, {time}",
		months: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	}},
	{"es", pattern{
		layout: "{day} {month} {year}, {time}",
		months: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	}},
	{"it", pattern{
		layout: "{day} {month} {year}, {time}",
		months: [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
	}},
	{"pt", pattern{
		layout: "{day} de {month} de {year}, {time}",
		months: [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
	}},
	{"nl", pattern{
		layout: "{day} {month} {year}, {time}",
		months: [12]string{"jan.", "feb.", "mrt.", "apr.", "mei", "jun.", "jul.", "aug.", "sep.", "okt.", "nov.", "dec."},
	}},
}

var (
	localeTags = func() []language.Tag {
		tags := make([]language.Tag, len(localeDefs))
		for i, def := range localeDefs {
			tags[i] = language.MustParse(def.tag)
		}
		return tags
	}()

	matcher = language.NewMatcher(localeTags)
)

// Format renders t in the pattern of the best-matching supported locale:
// numeric day and year, abbreviated month, 24-hour HH:MM clock. An empty or
// unparseable locale tag falls back to English.
func Format(locale string, t time.Time) string {
	p := resolve(locale)
	return strings.NewReplacer(
		"{day}", strconv.Itoa(t.Day()),
		"{month}", p.months[t.Month()-1],
		"{year}", strconv.Itoa(t.Year()),
		"{time}", fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()),
	).Replace(p.layout)
}

// Locales returns the supported locale tags in matching-priority order.
func Locales() []string {
	tags := make([]string, len(localeDefs))
	for i, def := range localeDefs {
		tags[i] = def.tag
	}
	return tags
}

func resolve(locale string) pattern {
	if locale == "" {
		return localeDefs[0].p
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return localeDefs[0].p
	}
	_, index, _ := matcher.Match(tag)
	return localeDefs[index].p
}
