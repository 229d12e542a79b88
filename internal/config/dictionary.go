package config

// DictionaryConfig holds per-dictionary configuration for a single source.
// This allows customizing fetch behavior per dictionary site.
type DictionaryConfig struct {
	// UserAgent overrides the User-Agent header for this dictionary.
	// If empty, the global or default User-Agent is used.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Headers are custom HTTP headers to include in requests to this site,
	// e.g. an Accept-Language matching the looked-up pair.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Mirrors are relay URL templates tried, in order, when the direct
	// request fails. A template containing %s receives the query-escaped
	// target URL there; otherwise the escaped URL is appended.
	Mirrors []string `yaml:"mirrors,omitempty"`

	// Disabled excludes this dictionary from lookups even when it would
	// otherwise be selected.
	Disabled bool `yaml:"disabled,omitempty"`
}

// File represents the structure of the .wordscan configuration file.
type File struct {
	// Dictionaries maps dictionary names to their specific configurations.
	// Keys are the registered names (e.g., "wordreference", "linguee").
	Dictionaries map[string]DictionaryConfig `yaml:"dictionaries,omitempty"`

	// Defaults contains default configuration applied to all dictionaries
	// unless overridden in the dictionary-specific configuration.
	Defaults DictionaryConfig `yaml:"defaults,omitempty"`
}

// GetDictionaryConfig returns the configuration for a specific dictionary.
// It merges the dictionary-specific configuration with defaults.
func (cf *File) GetDictionaryConfig(name string) DictionaryConfig {
	// Start with defaults
	result := cf.Defaults

	// Override with dictionary-specific configuration if present
	if dictConfig, ok := cf.Dictionaries[name]; ok {
		if dictConfig.UserAgent != "" {
			result.UserAgent = dictConfig.UserAgent
		}
		if len(dictConfig.Headers) > 0 {
			// Merge into a fresh map so the shared Defaults map stays intact.
			merged := make(map[string]string, len(result.Headers)+len(dictConfig.Headers))
			for k, v := range result.Headers {
				merged[k] = v
			}
			for k, v := range dictConfig.Headers {
				merged[k] = v
			}
			result.Headers = merged
		}
		if len(dictConfig.Mirrors) > 0 {
			result.Mirrors = dictConfig.Mirrors
		}
		if dictConfig.Disabled {
			result.Disabled = true
		}
	}

	return result
}
