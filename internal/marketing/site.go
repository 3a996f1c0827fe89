// Package marketing serves the static content of the public landing page.
package marketing

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var content []byte

type Link struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
}

type Action struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type Card struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Hero struct {
	Badge    string   `yaml:"badge" json:"badge"`
	Headline string   `yaml:"headline" json:"headline"`
	Summary  string   `yaml:"summary" json:"summary"`
	Actions  []Action `yaml:"actions" json:"actions"`
	Stats    []Stat   `yaml:"stats" json:"stats"`
}

type WhyUs struct {
	Intro     []string `yaml:"intro" json:"intro"`
	TrustedBy []string `yaml:"trusted_by" json:"trusted_by"`
	Reasons   []Card   `yaml:"reasons" json:"reasons"`
}

type CallToAction struct {
	Headline string   `yaml:"headline" json:"headline"`
	Summary  string   `yaml:"summary" json:"summary"`
	Actions  []Action `yaml:"actions" json:"actions"`
}

type Contact struct {
	Phone   string `yaml:"phone" json:"phone"`
	Email   string `yaml:"email" json:"email"`
	Address string `yaml:"address" json:"address"`
}

type Footer struct {
	About      string  `yaml:"about" json:"about"`
	QuickLinks []Link  `yaml:"quick_links" json:"quick_links"`
	Contact    Contact `yaml:"contact" json:"contact"`
	Legal      []Link  `yaml:"legal" json:"legal"`
	Copyright  string  `yaml:"copyright" json:"copyright"`
}

// Site is the whole landing page. It holds no state and is safe to share.
type Site struct {
	Name         string       `yaml:"name" json:"name"`
	Tagline      string       `yaml:"tagline" json:"tagline"`
	Navigation   []Link       `yaml:"navigation" json:"navigation"`
	Hero         Hero         `yaml:"hero" json:"hero"`
	Services     []Card       `yaml:"services" json:"services"`
	WhyUs        WhyUs        `yaml:"why_us" json:"why_us"`
	CallToAction CallToAction `yaml:"call_to_action" json:"call_to_action"`
	Footer       Footer       `yaml:"footer" json:"footer"`
}

// Load parses the embedded content.
func Load() (*Site, error) {
	return Parse(content)
}

// Parse decodes site content from YAML.
func Parse(raw []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("parse site content: name is required")
	}
	return &s, nil
}
