package lexicon

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// CategoryOverride extends or disables one category from configuration.
// Severities and match semantics are fixed policy and cannot be overridden.
type CategoryOverride struct {
	ExtraKeywords []string `mapstructure:"extra_keywords"`
	Disabled      bool     `mapstructure:"disabled"`
}

// StaticProvider serves the compiled-in lexicon merged with config overrides.
// Load is idempotent; the merged tables never change after the first call.
type StaticProvider struct {
	overrides map[string]interface{}

	once   sync.Once
	loaded map[string][]string
	err    error
}

func NewStaticProvider(overrides map[string]interface{}) *StaticProvider {
	return &StaticProvider{
		overrides: overrides,
	}
}

func (p *StaticProvider) Load(_ context.Context) error {
	p.once.Do(func() {
		merged := make(map[string][]string, len(defaultKeywords))
		for category, words := range defaultKeywords {
			list := make([]string, len(words))
			copy(list, words)
			merged[category.String()] = list
		}

		for name, raw := range p.overrides {
			var override CategoryOverride
			if err := mapstructure.Decode(raw, &override); err != nil {
				p.err = fmt.Errorf("invalid lexicon override for category '%s': %w", name, err)
				return
			}
			if override.Disabled {
				merged[name] = nil
				continue
			}
			for _, kw := range override.ExtraKeywords {
				kw = strings.ToLower(strings.TrimSpace(kw))
				if kw != "" {
					merged[name] = append(merged[name], kw)
				}
			}
		}

		p.loaded = merged
	})
	return p.err
}

func (p *StaticProvider) Get(category string) []string {
	if p.loaded == nil {
		return nil
	}
	return p.loaded[category]
}
