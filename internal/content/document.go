// Package content holds the static copy of the home, diet and wellness pages
// and the site footer. The copy lives in a YAML document that is embedded in
// the binary and can be overridden from disk.
package content

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Link is a labelled external URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Action is a button that navigates to an in-app page.
type Action struct {
	Label string `yaml:"label"`
	Page  string `yaml:"page"`
}

// Card is a titled block of text with an optional icon and accent colour.
type Card struct {
	Icon   string `yaml:"icon,omitempty"`
	Accent string `yaml:"accent,omitempty"`
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Quote  string `yaml:"quote,omitempty"`
}

// Section is a heading with body text.
type Section struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type Home struct {
	Badge           string  `yaml:"badge"`
	Title           string  `yaml:"title"`
	Subtitle        string  `yaml:"subtitle"`
	PrimaryAction   Action  `yaml:"primary_action"`
	SecondaryAction Action  `yaml:"secondary_action"`
	Journey         Section `yaml:"journey"`
	Why             Section `yaml:"why"`
	Features        []Card  `yaml:"features"`
	CTA             struct {
		Section `yaml:",inline"`
		Action  Action `yaml:"action"`
	} `yaml:"cta"`
}

type Diet struct {
	Title string `yaml:"title"`
	Intro string `yaml:"intro"`
	Tips  []Card `yaml:"tips"`
	Limit struct {
		Title string `yaml:"title"`
		Items []Card `yaml:"items"`
	} `yaml:"limit"`
	ProTip string `yaml:"pro_tip"`
}

// BreathingStep is one phase of a breathing exercise.
type BreathingStep struct {
	Label   string `yaml:"label"`
	Seconds int    `yaml:"seconds"`
}

type Wellness struct {
	Title     string  `yaml:"title"`
	Intro     string  `yaml:"intro"`
	Hero      Section `yaml:"hero"`
	Tips      []Card  `yaml:"tips"`
	Breathing struct {
		Title string          `yaml:"title"`
		Intro string          `yaml:"intro"`
		Steps []BreathingStep `yaml:"steps"`
		Outro string          `yaml:"outro"`
	} `yaml:"breathing"`
	Support struct {
		Section `yaml:",inline"`
		Link    Link `yaml:"link"`
	} `yaml:"support"`
}

type Footer struct {
	Brand   string `yaml:"brand"`
	Tagline string `yaml:"tagline"`
	Links   []Link `yaml:"links"`
	Social  []Link `yaml:"social"`
	Notice  string `yaml:"notice"`
}

// Document is the whole content file.
type Document struct {
	Home     Home     `yaml:"home"`
	Diet     Diet     `yaml:"diet"`
	Wellness Wellness `yaml:"wellness"`
	Footer   Footer   `yaml:"footer"`
}

// ErrIncomplete is returned for a document missing a required section.
var ErrIncomplete = errors.New("content: document is incomplete")

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("content: decode yaml: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that every page has its headline copy.
func (d *Document) Validate() error {
	switch {
	case d.Home.Title == "":
		return fmt.Errorf("%w: home.title", ErrIncomplete)
	case len(d.Home.Features) == 0:
		return fmt.Errorf("%w: home.features", ErrIncomplete)
	case d.Diet.Title == "":
		return fmt.Errorf("%w: diet.title", ErrIncomplete)
	case len(d.Diet.Tips) == 0:
		return fmt.Errorf("%w: diet.tips", ErrIncomplete)
	case d.Wellness.Title == "":
		return fmt.Errorf("%w: wellness.title", ErrIncomplete)
	case len(d.Wellness.Tips) == 0:
		return fmt.Errorf("%w: wellness.tips", ErrIncomplete)
	case d.Footer.Brand == "":
		return fmt.Errorf("%w: footer.brand", ErrIncomplete)
	}
	return nil
}
