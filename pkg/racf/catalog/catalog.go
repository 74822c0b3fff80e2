// File: catalog.go
// Title: RACF Vocabulary Catalog
// Description: Implements the vocabulary catalog that classifies RACF
//              words into commands, keywords, segment names and flags,
//              and carries human-readable descriptions for editor
//              features. Thread-safe for concurrent lookups.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial catalog implementation

package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/msto63/mRACF/pkg/core/log"
)

// CommandInfo describes one registered command
type CommandInfo struct {
	Name         string // Full command name (e.g. "ADDUSER")
	Abbreviation string // Accepted abbreviation (e.g. "AU"), may be empty
	Description  string // Human-readable description
}

// SegmentInfo describes one registered segment and its keyword vocabulary
type SegmentInfo struct {
	Name        string            // Segment name (e.g. "OMVS")
	Description string            // Human-readable description
	Keywords    map[string]string // Segment-specific keyword descriptions
}

// Options configures a Catalog
type Options struct {
	// EnableAbbreviations accepts command abbreviations (AU for
	// ADDUSER) during classification. Default true via DefaultOptions.
	EnableAbbreviations bool

	// Logger receives registration trace output. Optional.
	Logger *log.Logger
}

// DefaultOptions returns the default catalog options
func DefaultOptions() Options {
	return Options{EnableAbbreviations: true}
}

// Catalog is the vocabulary oracle consumed by the lexer and parser. All
// lookups are case-insensitive; registration normalizes names to upper
// case. A Catalog is safe for concurrent use.
type Catalog struct {
	mu sync.RWMutex

	commands      map[string]CommandInfo // Full name -> info
	abbreviations map[string]string      // Abbreviation -> full name
	keywords      map[string]string      // Keyword -> description
	segments      map[string]SegmentInfo // Segment name -> info
	flags         map[string]bool        // Flag keyword set

	enableAbbreviations bool
	logger              *log.Logger
}

// New creates an empty catalog
func New(opts Options) *Catalog {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Catalog{
		commands:            make(map[string]CommandInfo),
		abbreviations:       make(map[string]string),
		keywords:            make(map[string]string),
		segments:            make(map[string]SegmentInfo),
		flags:               make(map[string]bool),
		enableAbbreviations: opts.EnableAbbreviations,
		logger:              logger,
	}
}

// RegisterCommand registers a command with an optional abbreviation
func (c *Catalog) RegisterCommand(name, abbreviation, description string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	abbreviation = strings.ToUpper(strings.TrimSpace(abbreviation))

	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}

	c.commands[name] = CommandInfo{
		Name:         name,
		Abbreviation: abbreviation,
		Description:  description,
	}
	if abbreviation != "" {
		c.abbreviations[abbreviation] = name
	}

	c.logger.Trace("registered command", log.Fields{"command": name, "abbreviation": abbreviation})
	return nil
}

// RegisterKeyword registers a keyword with its description. Registering
// an existing keyword overwrites the description.
func (c *Catalog) RegisterKeyword(name, description string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("keyword name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.keywords[name] = description
	return nil
}

// RegisterFlag marks a keyword as a pure boolean flag and registers it
// as a keyword with the given description
func (c *Catalog) RegisterFlag(name, description string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("flag name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.keywords[name] = description
	c.flags[name] = true
	return nil
}

// RegisterSegment registers a segment with its keyword vocabulary. The
// segment's keywords also become known keywords globally so the lexer
// classifies them uniformly.
func (c *Catalog) RegisterSegment(name, description string, keywords map[string]string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("segment name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	info := SegmentInfo{
		Name:        name,
		Description: description,
		Keywords:    make(map[string]string, len(keywords)),
	}
	for kw, desc := range keywords {
		kw = strings.ToUpper(strings.TrimSpace(kw))
		info.Keywords[kw] = desc
		if _, exists := c.keywords[kw]; !exists {
			c.keywords[kw] = desc
		}
	}
	c.segments[name] = info

	c.logger.Trace("registered segment", log.Fields{"segment": name, "keywords": len(keywords)})
	return nil
}

// IsCommand reports whether the word is a registered command name or,
// when abbreviations are enabled, a registered abbreviation
func (c *Catalog) IsCommand(word string) bool {
	word = strings.ToUpper(word)
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.commands[word]; ok {
		return true
	}
	if c.enableAbbreviations {
		_, ok := c.abbreviations[word]
		return ok
	}
	return false
}

// IsKeyword reports whether the word is a registered keyword
func (c *Catalog) IsKeyword(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.keywords[strings.ToUpper(word)]
	return ok
}

// IsSegmentName reports whether the word names a registered segment
func (c *Catalog) IsSegmentName(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.segments[strings.ToUpper(word)]
	return ok
}

// IsFlagKeyword reports whether the word is a registered boolean flag
func (c *Catalog) IsFlagKeyword(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.flags[strings.ToUpper(word)]
}

// ExpandAbbreviation resolves a command abbreviation to its full name.
// A full command name resolves to itself.
func (c *Catalog) ExpandAbbreviation(word string) (string, bool) {
	word = strings.ToUpper(word)
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.commands[word]; ok {
		return word, true
	}
	if full, ok := c.abbreviations[word]; ok {
		return full, true
	}
	return "", false
}

// Describe returns the human-readable description for a word, searching
// commands (including abbreviations), segments and keywords in that
// order
func (c *Catalog) Describe(word string) (string, bool) {
	word = strings.ToUpper(word)
	c.mu.RLock()
	defer c.mu.RUnlock()

	if full, ok := c.abbreviations[word]; ok {
		word = full
	}
	if info, ok := c.commands[word]; ok {
		return info.Description, true
	}
	if info, ok := c.segments[word]; ok {
		return info.Description, true
	}
	if desc, ok := c.keywords[word]; ok {
		return desc, true
	}
	return "", false
}

// Command returns the registered info for a command name or abbreviation
func (c *Catalog) Command(word string) (CommandInfo, bool) {
	word = strings.ToUpper(word)
	c.mu.RLock()
	defer c.mu.RUnlock()

	if full, ok := c.abbreviations[word]; ok {
		word = full
	}
	info, ok := c.commands[word]
	return info, ok
}

// Commands returns all registered commands sorted by name
func (c *Catalog) Commands() []CommandInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	infos := make([]CommandInfo, 0, len(c.commands))
	for _, info := range c.commands {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Segment returns the registered info for a segment name
func (c *Catalog) Segment(name string) (SegmentInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.segments[strings.ToUpper(name)]
	return info, ok
}

// SegmentNames returns all registered segment names sorted
func (c *Catalog) SegmentNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.segments))
	for name := range c.segments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SegmentKeywords returns the keyword names of a segment sorted, with
// their descriptions
func (c *Catalog) SegmentKeywords(name string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.segments[strings.ToUpper(name)]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(info.Keywords))
	for kw, desc := range info.Keywords {
		out[kw] = desc
	}
	return out
}

// Keywords returns all registered keywords with descriptions
func (c *Catalog) Keywords() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.keywords))
	for kw, desc := range c.keywords {
		out[kw] = desc
	}
	return out
}

// FlagNames returns all registered flag keywords sorted
func (c *Catalog) FlagNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.flags))
	for name := range c.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
