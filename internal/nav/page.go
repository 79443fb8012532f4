// Package nav implements in-memory page navigation: the fixed set of page
// identifiers, the access gate that guards protected pages and the router
// that tracks the current page.
package nav

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Page identifies one view of the application.
type Page string

const (
	Home      Page = "home"
	Login     Page = "login"
	Register  Page = "register"
	Detection Page = "detection"
	Diet      Page = "diet"
	Wellness  Page = "wellness"
	Tracking  Page = "tracking"
)

// Default is the page every new router starts on and the fallback for
// unknown identifiers.
const Default = Home

// Pages lists every known page.
var Pages = []Page{Home, Login, Register, Detection, Diet, Wellness, Tracking}

// MenuPages is the navbar order.
var MenuPages = []Page{Home, Detection, Diet, Tracking, Wellness}

var titleCaser = cases.Title(language.English)

// Parse maps a raw identifier to a Page. Unknown or empty identifiers map
// to Default; the second result reports whether the identifier was known.
func Parse(raw string) (Page, bool) {
	p := Page(strings.ToLower(strings.TrimSpace(raw)))
	if p.Known() {
		return p, true
	}
	return Default, false
}

// Known reports whether p is one of the fixed identifiers.
func (p Page) Known() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// Label is the navbar text for the page.
func (p Page) Label() string {
	return titleCaser.String(string(p))
}

func (p Page) String() string { return string(p) }
