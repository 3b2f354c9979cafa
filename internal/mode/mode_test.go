package mode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_Validate(t *testing.T) {
	valid := func() *Mode {
		return &Mode{
			Slug:         "docs-writer",
			Name:         "Docs:Writer",
			Capabilities: []Capability{CapRead, CapEdit},
			Source:       SourceProject,
			Instructions: "Write documentation.",
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Mode)
		field  string
	}{
		{"missing slug", func(m *Mode) { m.Slug = "" }, "slug"},
		{"uppercase slug", func(m *Mode) { m.Slug = "Docs-Writer" }, "slug"},
		{"slug with spaces", func(m *Mode) { m.Slug = "docs writer" }, "slug"},
		{"missing name", func(m *Mode) { m.Name = "  " }, "name"},
		{"missing instructions", func(m *Mode) { m.Instructions = "\n" }, "instructions"},
		{"unknown capability", func(m *Mode) { m.Capabilities = []Capability{CapRead, "teleport"} }, "capabilities"},
		{"duplicate capability", func(m *Mode) { m.Capabilities = []Capability{CapRead, CapRead} }, "capabilities"},
		{"edit restriction without edit", func(m *Mode) {
			m.Capabilities = []Capability{CapRead}
			m.Edit = &EditRestriction{Pattern: "**/*.py"}
		}, "edit"},
		{"edit restriction without pattern", func(m *Mode) { m.Edit = &EditRestriction{} }, "edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			err := m.Validate()
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCapability_Known(t *testing.T) {
	for _, c := range KnownCapabilities() {
		assert.True(t, c.Known())
	}
	assert.False(t, Capability("teleport").Known())
	assert.False(t, Capability("READ").Known())
}

func TestMode_Allows(t *testing.T) {
	m := &Mode{Capabilities: []Capability{CapRead, CapCommand}}

	assert.True(t, m.Allows(CapRead))
	assert.True(t, m.Allows(CapCommand))
	assert.False(t, m.Allows(CapEdit))
	assert.False(t, m.Allows(CapBrowse))
}

func TestMode_AllowsEdit(t *testing.T) {
	// No edit capability at all
	readonly := &Mode{Capabilities: []Capability{CapRead}}
	assert.False(t, readonly.AllowsEdit("main.py"))

	// Unrestricted edit
	open := &Mode{Capabilities: []Capability{CapEdit}}
	assert.True(t, open.AllowsEdit("main.py"))
	assert.True(t, open.AllowsEdit("docs/guide.md"))

	// Restricted edit
	restricted := &Mode{
		Capabilities: []Capability{CapEdit},
		Edit:         &EditRestriction{Pattern: "**/*.py"},
	}
	assert.True(t, restricted.AllowsEdit("src/pkg/main.py"))
	assert.False(t, restricted.AllowsEdit("README.md"))
}

func TestMatchWildcard(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"*", "anything", true},
		{"*", "nested/path/file.py", true},
		{"docs/*", "docs/guide.md", true},
		{"docs/*", "docs/sub/guide.md", false},
		{"docs/*", "src/main.py", false},
		{"*.md", "README.md", true},
		{"*.md", "main.py", false},
		{"**/*.py", "a/b/c/main.py", true},
		{"**/*.py", "main.go", false},
		{"exact.txt", "exact.txt", true},
		{"exact.txt", "other.txt", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchWildcard(tt.pattern, tt.input),
			"pattern %q against %q", tt.pattern, tt.input)
	}
}

func TestMode_Clone(t *testing.T) {
	original := &Mode{
		Slug:         "python-refactor",
		Name:         "Python:Refactor",
		Capabilities: []Capability{CapRead, CapEdit},
		Source:       SourceBuiltIn,
		Edit:         &EditRestriction{Pattern: "**/*.py", Note: "python only"},
		Instructions: "Refactor.",
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Deep copy: mutating the clone leaves the original alone
	clone.Capabilities[0] = CapBrowse
	clone.Edit.Pattern = "**/*.go"
	assert.Equal(t, CapRead, original.Capabilities[0])
	assert.Equal(t, "**/*.py", original.Edit.Pattern)
}

func TestErrors(t *testing.T) {
	nf := &NotFoundError{Slug: "missing-slug"}
	assert.Contains(t, nf.Error(), "missing-slug")
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsNotFound(errors.New("other")))

	ve := &ValidationError{Slug: "bad", Field: "name", Reason: "missing"}
	assert.Contains(t, ve.Error(), "name")
	assert.True(t, IsValidation(ve))
	assert.False(t, IsValidation(nf))
}
