package mdopts

// ParseOptions configures the block/inline parser (§4.4.1).
type ParseOptions struct {
	AutoLink bool `mapstructure:"auto_link"`
	Emoji    struct {
		Dictionary []string `mapstructure:"dictionary"`
	} `mapstructure:"emoji"`
	Latex                    bool     `mapstructure:"latex"`
	NewlineAsLinebreaks      bool     `mapstructure:"newline_as_linebreaks"`
	CodeBlockFromIndent      bool     `mapstructure:"code_block_from_indent"`
	DisallowedInlineHTMLTags []string `mapstructure:"disallowed_inline_html_tags"`
}

// DefaultParseOptions returns the documented defaults: auto_link off,
// no recognized emoji shortcodes, latex off, newline_as_linebreaks off,
// code_block_from_indent off, and no inline-HTML tag override (the
// sanitizer's own default applies).
func DefaultParseOptions() map[string]any {
	return map[string]any{
		"auto_link": false,
		"emoji": map[string]any{
			"dictionary": []string{},
		},
		"latex":                       false,
		"newline_as_linebreaks":       false,
		"code_block_from_indent":      false,
		"disallowed_inline_html_tags": []string{},
	}
}

// MergeParseOptions deep-merges user over the documented defaults and
// returns a ready-to-use ParseOptions.
func MergeParseOptions(user map[string]any) (ParseOptions, error) {
	var opts ParseOptions
	if err := deepMerge(&opts, DefaultParseOptions(), user); err != nil {
		return ParseOptions{}, err
	}
	return opts, nil
}

// EmojiDictionary returns the recognized shortcode set for fast lookup
// during inline scanning.
func (p ParseOptions) EmojiDictionary() map[string]bool {
	set := make(map[string]bool, len(p.Emoji.Dictionary))
	for _, name := range p.Emoji.Dictionary {
		set[name] = true
	}
	return set
}
