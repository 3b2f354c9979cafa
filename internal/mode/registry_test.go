package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	// Should have built-in modes
	assert.True(t, r.Exists("python-tdd"))
	assert.True(t, r.Exists("python-module"))
	assert.True(t, r.Exists("python-refactor"))
	assert.True(t, r.Exists("uv-script"))
	assert.Equal(t, 4, r.Count())
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	// Get existing mode
	m, err := r.Get("python-tdd")
	require.NoError(t, err)
	assert.Equal(t, "Python:TDD", m.Name)
	assert.ElementsMatch(t, KnownCapabilities(), m.Capabilities)

	// Get non-existing mode
	_, err = r.Get("missing-slug")
	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "mode not found")
}

func TestRegistry_Get_ExactMatchOnly(t *testing.T) {
	r := NewRegistry()

	// No case folding, no fuzzy matching
	_, err := r.Get("Python-TDD")
	assert.True(t, IsNotFound(err))

	_, err = r.Get("python-td")
	assert.True(t, IsNotFound(err))
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&Mode{
		Slug:         "docs-writer",
		Name:         "Docs:Writer",
		Capabilities: []Capability{CapRead, CapEdit},
		Source:       SourceProject,
		Instructions: "Write documentation.",
	})
	require.NoError(t, err)

	m, err := r.Get("docs-writer")
	require.NoError(t, err)
	assert.Equal(t, "Docs:Writer", m.Name)
	assert.Equal(t, 5, r.Count())
}

func TestRegistry_Register_DuplicateSlug(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&Mode{
		Slug:         "python-tdd",
		Name:         "Impostor",
		Capabilities: []Capability{CapRead},
		Source:       SourceProject,
		Instructions: "x",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "already registered")

	// Original untouched
	m, err := r.Get("python-tdd")
	require.NoError(t, err)
	assert.Equal(t, "Python:TDD", m.Name)
}

func TestRegistry_Register_Invalid(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&Mode{Slug: "no-name", Instructions: "x"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.False(t, r.Exists("no-name"))
}

func TestRegistry_Override_KeepsPosition(t *testing.T) {
	r := NewRegistry()

	err := r.Override(&Mode{
		Slug:         "python-tdd",
		Name:         "Python:TDD (project)",
		Capabilities: []Capability{CapRead, CapEdit},
		Source:       SourceProject,
		Instructions: "Project-specific TDD rules.",
	})
	require.NoError(t, err)

	names := r.Names()
	assert.Equal(t, []string{"python-tdd", "python-module", "python-refactor", "uv-script"}, names)

	m, err := r.Get("python-tdd")
	require.NoError(t, err)
	assert.Equal(t, SourceProject, m.Source)
}

func TestRegistry_Override_NewSlugAppends(t *testing.T) {
	r := NewRegistry()

	err := r.Override(&Mode{
		Slug:         "docs-writer",
		Name:         "Docs:Writer",
		Capabilities: []Capability{CapRead},
		Source:       SourceGlobal,
		Instructions: "x",
	})
	require.NoError(t, err)

	names := r.Names()
	assert.Equal(t, "docs-writer", names[len(names)-1])
}

func TestRegistry_List_OrderAndIdempotency(t *testing.T) {
	r := NewRegistry()

	first := r.List()
	second := r.List()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Slug, second[i].Slug)
	}

	// Authoring order: built-ins as declared
	assert.Equal(t, "python-tdd", first[0].Slug)
	assert.Equal(t, "uv-script", first[3].Slug)
}

func TestRegistry_ListBySource(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Mode{
		Slug:         "docs-writer",
		Name:         "Docs:Writer",
		Capabilities: []Capability{CapRead},
		Source:       SourceProject,
		Instructions: "x",
	}))

	builtins := r.ListBySource(SourceBuiltIn)
	assert.Len(t, builtins, 4)

	project := r.ListBySource(SourceProject)
	require.Len(t, project, 1)
	assert.Equal(t, "docs-writer", project[0].Slug)
}

func TestRegistry_ListWithCapability(t *testing.T) {
	r := NewRegistry()

	browse := r.ListWithCapability(CapBrowse)
	slugs := make([]string, len(browse))
	for i, m := range browse {
		slugs[i] = m.Slug
	}
	assert.Equal(t, []string{"python-tdd", "python-module"}, slugs)
}

func TestRegistry_SetModes(t *testing.T) {
	r := NewRegistry()

	r.SetModes([]*Mode{
		{
			Slug:         "only-mode",
			Name:         "Only",
			Capabilities: []Capability{CapRead},
			Source:       SourceProject,
			Instructions: "x",
		},
	})

	assert.Equal(t, 1, r.Count())
	assert.False(t, r.Exists("python-tdd"))
	assert.Equal(t, []string{"only-mode"}, r.Names())

	// Empty registry is valid
	r.SetModes(nil)
	assert.Equal(t, 0, r.Count())
	assert.Empty(t, r.List())
}
