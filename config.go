package kindaxml

import "fmt"

// Strategy selects how an unclosed (or autoclosed) tag binds to a span of
// emitted text. Closure via an explicit matching end tag never consults the
// strategy: it always annotates the inline range directly.
type Strategy int

const (
	// StrategyRetroLine annotates the text emitted since the last newline
	// (or start of output) before the tag.
	StrategyRetroLine Strategy = iota
	// StrategyForwardUntilTag annotates from the tag's open point to the
	// point where it was closed (by autoclose or end of input).
	StrategyForwardUntilTag
	// StrategyForwardUntilNewline annotates from the tag's open point to the
	// next newline in the input (or end of input), evaluated at open time.
	StrategyForwardUntilNewline
	// StrategyForwardNextToken annotates only the next contiguous
	// non-whitespace run emitted after the tag opened.
	StrategyForwardNextToken
	// StrategyNoop never produces an annotation for an unclosed tag.
	StrategyNoop
)

// String renders the strategy using the wire names accepted by SetRecoveryStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRetroLine:
		return "retro_line"
	case StrategyForwardUntilTag:
		return "forward_until_tag"
	case StrategyForwardUntilNewline:
		return "forward_until_newline"
	case StrategyForwardNextToken:
		return "forward_next_token"
	case StrategyNoop:
		return "noop"
	default:
		return "unknown"
	}
}

func parseStrategy(name string) (Strategy, error) {
	switch name {
	case "retro_line":
		return StrategyRetroLine, nil
	case "forward_until_tag":
		return StrategyForwardUntilTag, nil
	case "forward_until_newline":
		return StrategyForwardUntilNewline, nil
	case "forward_next_token":
		return StrategyForwardNextToken, nil
	case "noop":
		return StrategyNoop, nil
	default:
		return 0, fmt.Errorf("kindaxml: unknown recovery strategy %q", name)
	}
}

// UnknownMode controls how tags outside the recognized set are handled.
type UnknownMode int

const (
	// UnknownStrip drops unrecognized tag markup; interior text still emits.
	UnknownStrip UnknownMode = iota
	// UnknownPassthrough writes the tag's raw source bytes as literal text.
	UnknownPassthrough
	// UnknownTreatAsText never treats '<' as tag-opening for unrecognized
	// names; the scanner is re-entered one byte later.
	UnknownTreatAsText
)

// String renders the mode using the wire name accepted by SetUnknownMode.
func (m UnknownMode) String() string {
	switch m {
	case UnknownStrip:
		return "strip"
	case UnknownPassthrough:
		return "passthrough"
	case UnknownTreatAsText:
		return "treat_as_text"
	default:
		return "unknown"
	}
}

func parseUnknownMode(name string) (UnknownMode, error) {
	switch name {
	case "strip":
		return UnknownStrip, nil
	case "passthrough":
		return UnknownPassthrough, nil
	case "treat_as_text":
		return UnknownTreatAsText, nil
	default:
		return 0, fmt.Errorf("kindaxml: unknown unknown-tag mode %q", name)
	}
}

// StrayEndTagPolicy controls what happens to a recognized end tag that does
// not match the top of the open-tag stack.
type StrayEndTagPolicy int

const (
	// StrayDrop silently discards a stray recognized end tag.
	StrayDrop StrayEndTagPolicy = iota
	// StrayPassthrough writes the stray end tag's raw bytes as literal text.
	StrayPassthrough
)

func (p StrayEndTagPolicy) String() string {
	if p == StrayPassthrough {
		return "passthrough"
	}
	return "drop"
}

func parseStrayEndTagPolicy(name string) (StrayEndTagPolicy, error) {
	switch name {
	case "drop":
		return StrayDrop, nil
	case "passthrough":
		return StrayPassthrough, nil
	default:
		return 0, fmt.Errorf("kindaxml: unknown stray end tag policy %q", name)
	}
}

// Config is an immutable-for-the-duration-of-parse bundle of knobs governing
// tag recognition, unknown-tag handling, and unclosed-tag recovery. Build one
// with NewConfig and the Set* methods; a Config is safe to reuse across many
// Parse calls as long as nothing mutates it concurrently with a call in
// flight (see spec.md §5).
type Config struct {
	recognizedTags     map[string]struct{}
	unknownMode        UnknownMode
	perTagRecovery     map[string]Strategy
	defaultRecovery    Strategy
	trimPunctuation    bool
	autocloseOnAnyTag  bool
	autocloseOnSameTag bool
	caseSensitiveTags  bool
	strayEndTagPolicy  StrayEndTagPolicy
}

// NewConfig returns a Config with the defaults from spec.md §4.1:
// no recognized tags, unknown_mode=strip, default_recovery=retro_line,
// trim_punctuation=true, both autoclose flags true, case_sensitive_tags=true,
// stray_end_tag_policy=drop.
func NewConfig() *Config {
	return &Config{
		recognizedTags:     make(map[string]struct{}),
		unknownMode:        UnknownStrip,
		perTagRecovery:     make(map[string]Strategy),
		defaultRecovery:    StrategyRetroLine,
		trimPunctuation:    true,
		autocloseOnAnyTag:  true,
		autocloseOnSameTag: true,
		caseSensitiveTags:  true,
		strayEndTagPolicy:  StrayDrop,
	}
}

// SetRecognizedTags replaces the tag whitelist.
func (c *Config) SetRecognizedTags(tags []string) *Config {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	c.recognizedTags = set
	return c
}

// SetUnknownMode sets how unrecognized tags are handled. Returns an error
// (config unchanged) if mode is not one of "strip", "passthrough", or
// "treat_as_text".
func (c *Config) SetUnknownMode(mode string) error {
	m, err := parseUnknownMode(mode)
	if err != nil {
		return err
	}
	c.unknownMode = m
	return nil
}

// SetRecoveryStrategy sets the recovery strategy used when tag does not
// close explicitly. Returns an error (config unchanged) if strategy is not
// recognized.
func (c *Config) SetRecoveryStrategy(tag, strategy string) error {
	s, err := parseStrategy(strategy)
	if err != nil {
		return err
	}
	c.perTagRecovery[tag] = s
	return nil
}

// SetDefaultRecovery sets the strategy used for tags with no per-tag entry.
func (c *Config) SetDefaultRecovery(strategy string) error {
	s, err := parseStrategy(strategy)
	if err != nil {
		return err
	}
	c.defaultRecovery = s
	return nil
}

// SetStrayEndTagPolicy sets how a recognized end tag that does not match the
// top of the open-tag stack is handled.
func (c *Config) SetStrayEndTagPolicy(policy string) error {
	p, err := parseStrayEndTagPolicy(policy)
	if err != nil {
		return err
	}
	c.strayEndTagPolicy = p
	return nil
}

// SetTrimPunctuation toggles trimming of leading/trailing ASCII punctuation
// and whitespace when a retro span is extracted.
func (c *Config) SetTrimPunctuation(v bool) *Config {
	c.trimPunctuation = v
	return c
}

// SetAutocloseOnAnyTag toggles whether opening any new tag closes any
// currently-open tag.
func (c *Config) SetAutocloseOnAnyTag(v bool) *Config {
	c.autocloseOnAnyTag = v
	return c
}

// SetAutocloseOnSameTag toggles whether re-opening the same tag name closes
// the prior instance. Only relevant when SetAutocloseOnAnyTag(false) is set.
func (c *Config) SetAutocloseOnSameTag(v bool) *Config {
	c.autocloseOnSameTag = v
	return c
}

// SetCaseSensitiveTags toggles case folding of tag names. Attribute names
// are never folded regardless of this setting.
func (c *Config) SetCaseSensitiveTags(v bool) *Config {
	c.caseSensitiveTags = v
	return c
}

// DefaultLLMFriendlyConfig returns a preset tuned for common LLM annotation
// tags: cite, note, todo, claim, risk, code. cite retroactively annotates the
// preceding line; the rest annotate forward until the next tag. Tag matching
// is case-insensitive.
func DefaultLLMFriendlyConfig() *Config {
	c := NewConfig()
	c.SetRecognizedTags([]string{"cite", "note", "todo", "claim", "risk", "code"})
	c.SetCaseSensitiveTags(false)
	c.SetTrimPunctuation(true)
	_ = c.SetRecoveryStrategy("cite", "retro_line")
	for _, tag := range []string{"note", "todo", "claim", "risk", "code"} {
		_ = c.SetRecoveryStrategy(tag, "forward_until_tag")
	}
	return c
}

// DefaultCiteConfig returns a preset that recognizes only the cite tag,
// recovering unclosed citations against the preceding line.
func DefaultCiteConfig() *Config {
	c := NewConfig()
	c.SetRecognizedTags([]string{"cite"})
	c.SetCaseSensitiveTags(false)
	c.SetTrimPunctuation(true)
	_ = c.SetRecoveryStrategy("cite", "retro_line")
	return c
}
