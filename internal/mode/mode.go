// Package mode provides the operating-mode registry for modekit.
package mode

import (
	"regexp"
	"strings"
)

// Capability is one entry from the fixed vocabulary of actions a mode may
// invoke.
type Capability string

const (
	// CapRead allows reading files.
	CapRead Capability = "read"
	// CapEdit allows editing files, optionally narrowed by an EditRestriction.
	CapEdit Capability = "edit"
	// CapBrowse allows using a browser.
	CapBrowse Capability = "browse"
	// CapCommand allows running external commands.
	CapCommand Capability = "command"
	// CapMCP allows calling external tools over MCP.
	CapMCP Capability = "mcp"
)

// KnownCapabilities returns the fixed capability vocabulary in canonical order.
func KnownCapabilities() []Capability {
	return []Capability{CapRead, CapEdit, CapBrowse, CapCommand, CapMCP}
}

// Known reports whether c is part of the fixed vocabulary.
func (c Capability) Known() bool {
	switch c {
	case CapRead, CapEdit, CapBrowse, CapCommand, CapMCP:
		return true
	}
	return false
}

// Source tags where a mode definition came from.
type Source string

const (
	SourceBuiltIn Source = "built-in"
	SourceGlobal  Source = "global"
	SourceProject Source = "project"
)

// EditRestriction narrows the edit capability to files matching a pattern.
type EditRestriction struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Note    string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Allows reports whether path falls inside the restriction.
func (e *EditRestriction) Allows(path string) bool {
	if e == nil {
		return true
	}
	return matchWildcard(e.Pattern, path)
}

// Mode represents one selectable behavior profile for an external agent.
type Mode struct {
	Slug         string           `json:"slug"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Capabilities []Capability     `json:"capabilities"`
	Source       Source           `json:"source"`
	Edit         *EditRestriction `json:"edit,omitempty"`
	Instructions string           `json:"instructions"`
}

// slugPattern is the accepted slug shape: lowercase words joined by hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks the mode against the registry invariants. It returns a
// *ValidationError naming the offending field, or nil.
func (m *Mode) Validate() error {
	if m.Slug == "" {
		return &ValidationError{Slug: m.Slug, Field: "slug", Reason: "missing"}
	}
	if !slugPattern.MatchString(m.Slug) {
		return &ValidationError{Slug: m.Slug, Field: "slug", Reason: "must be lowercase words joined by hyphens"}
	}
	if strings.TrimSpace(m.Name) == "" {
		return &ValidationError{Slug: m.Slug, Field: "name", Reason: "missing"}
	}
	if strings.TrimSpace(m.Instructions) == "" {
		return &ValidationError{Slug: m.Slug, Field: "instructions", Reason: "missing"}
	}
	seen := make(map[Capability]bool, len(m.Capabilities))
	for _, c := range m.Capabilities {
		if !c.Known() {
			return &ValidationError{Slug: m.Slug, Field: "capabilities", Reason: "unknown capability: " + string(c)}
		}
		if seen[c] {
			return &ValidationError{Slug: m.Slug, Field: "capabilities", Reason: "duplicate capability: " + string(c)}
		}
		seen[c] = true
	}
	if m.Edit != nil {
		if !seen[CapEdit] {
			return &ValidationError{Slug: m.Slug, Field: "edit", Reason: "edit restriction requires the edit capability"}
		}
		if m.Edit.Pattern == "" {
			return &ValidationError{Slug: m.Slug, Field: "edit", Reason: "missing pattern"}
		}
	}
	return nil
}

// Allows reports whether the mode declares the given capability.
func (m *Mode) Allows(c Capability) bool {
	for _, have := range m.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// AllowsEdit reports whether the mode may edit the given file path, taking
// any edit restriction into account.
func (m *Mode) AllowsEdit(path string) bool {
	if !m.Allows(CapEdit) {
		return false
	}
	return m.Edit.Allows(path)
}

// Clone creates a deep copy of the mode.
func (m *Mode) Clone() *Mode {
	clone := &Mode{
		Slug:         m.Slug,
		Name:         m.Name,
		Description:  m.Description,
		Source:       m.Source,
		Instructions: m.Instructions,
	}
	if m.Capabilities != nil {
		clone.Capabilities = make([]Capability, len(m.Capabilities))
		copy(clone.Capabilities, m.Capabilities)
	}
	if m.Edit != nil {
		clone.Edit = &EditRestriction{Pattern: m.Edit.Pattern, Note: m.Edit.Note}
	}
	return clone
}
