// Package yaml loads site profile configuration from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/webml"
	"gopkg.in/yaml.v3"
)

// ProfileConfig is the document stored in a profiles file:
//
//	include_defaults: true
//	profiles:
//	  - name: docs
//	    hosts: [docs.example.com]
//	    content: [".doc-body"]
//	    noise: [".edit-link"]
type ProfileConfig struct {
	// IncludeDefaults keeps the built-in profiles after the configured
	// ones. Defaults to true.
	IncludeDefaults *bool               `yaml:"include_defaults"`
	Profiles        []webml.SiteProfile `yaml:"profiles"`
}

func (c *ProfileConfig) defaults() {
	if c.IncludeDefaults == nil {
		include := true
		c.IncludeDefaults = &include
	}
}

// Validate checks every profile and its selectors.
func (c *ProfileConfig) Validate() error {
	seen := make(map[string]bool, len(c.Profiles))
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.Name] {
			return webml.Errorf(webml.EINVALID, "profile %q defined twice", p.Name)
		}
		seen[p.Name] = true

		if _, err := webml.ParseFramework(string(p.Framework)); err != nil {
			return webml.Errorf(webml.EINVALID, "profile %q: %s", p.Name, webml.ErrorMessage(err))
		}
		for _, sel := range append(append([]string{}, p.ContentSelectors...), p.NoiseSelectors...) {
			if _, err := cascadia.ParseGroup(sel); err != nil {
				return webml.Errorf(webml.EINVALID, "profile %q: invalid selector %q: %v", p.Name, sel, err)
			}
		}
	}
	return nil
}

// Merge returns the configured profiles followed by those defaults whose
// names are not taken, so configured profiles win host matching.
func (c *ProfileConfig) Merge(defaults []webml.SiteProfile) []webml.SiteProfile {
	out := make([]webml.SiteProfile, 0, len(c.Profiles)+len(defaults))
	out = append(out, c.Profiles...)
	if c.IncludeDefaults != nil && !*c.IncludeDefaults {
		return out
	}

	taken := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		taken[p.Name] = true
	}
	for _, p := range defaults {
		if !taken[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

// ParseProfiles decodes and validates a profiles document.
func ParseProfiles(r io.Reader) (*ProfileConfig, error) {
	cfg := &ProfileConfig{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, webml.Errorf(webml.EINVALID, "parse profiles: %v", err)
	}
	cfg.defaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadProfiles reads a profiles file from path.
func LoadProfiles(path string) (*ProfileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseProfiles(f)
}
