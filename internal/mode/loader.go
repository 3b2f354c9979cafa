package mode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/modekit/modekit/internal/logging"
)

// Issue records one mode definition that was refused at load time. The rest
// of the load proceeds; a bad entry never aborts it.
type Issue struct {
	Path string `json:"path,omitempty"`
	Slug string `json:"slug,omitempty"`
	Err  error  `json:"-"`
}

func (i Issue) String() string {
	switch {
	case i.Path != "" && i.Slug != "":
		return fmt.Sprintf("%s: %s: %v", i.Path, i.Slug, i.Err)
	case i.Path != "":
		return fmt.Sprintf("%s: %v", i.Path, i.Err)
	default:
		return fmt.Sprintf("%s: %v", i.Slug, i.Err)
	}
}

// Loader assembles a registry from the built-ins plus the global and project
// mode sources. Precedence rises from built-in to global to project; a
// higher-precedence definition replaces a lower one slug-for-slug.
type Loader struct {
	globalDir  string
	projectDir string
}

// NewLoader creates a loader reading global definitions from globalDir and
// project definitions from projectDir. Either may be empty to skip that
// source.
func NewLoader(globalDir, projectDir string) *Loader {
	return &Loader{globalDir: globalDir, projectDir: projectDir}
}

// Load builds a fresh registry. Malformed entries are reported as issues and
// skipped, never registered.
func (l *Loader) Load() (*Registry, []Issue) {
	r := NewRegistry()

	var issues []Issue
	if l.globalDir != "" {
		issues = append(issues, l.loadSource(r, l.globalDir, SourceGlobal)...)
	}
	if l.projectDir != "" {
		issues = append(issues, l.loadSource(r, l.projectDir, SourceProject)...)
	}

	for _, issue := range issues {
		logging.Warn().
			Str("path", issue.Path).
			Str("slug", issue.Slug).
			Err(issue.Err).
			Msg("skipped invalid mode definition")
	}

	return r, issues
}

// loadSource loads one source directory: the JSON aggregator first, then the
// per-mode markdown files in file-name order.
func (l *Loader) loadSource(r *Registry, dir string, src Source) []Issue {
	var issues []Issue
	seen := make(map[string]bool)

	add := func(path string, m *Mode) {
		if seen[m.Slug] {
			issues = append(issues, Issue{Path: path, Slug: m.Slug, Err: &ValidationError{
				Slug: m.Slug, Field: "slug", Reason: "duplicate within " + string(src) + " source",
			}})
			return
		}

		var err error
		if r.Exists(m.Slug) {
			err = r.Override(m)
		} else {
			err = r.Register(m)
		}
		if err != nil {
			issues = append(issues, Issue{Path: path, Slug: m.Slug, Err: err})
			return
		}
		seen[m.Slug] = true
	}

	// First parseable aggregator wins, like config.Load does for the tool
	// config; loading both would report every slug as a duplicate
	for _, name := range []string{"modes.json", "modes.jsonc"} {
		path := filepath.Join(dir, name)
		modes, err := parseAggregator(path, src)
		if err != nil {
			if !os.IsNotExist(err) {
				issues = append(issues, Issue{Path: path, Err: err})
			}
			continue
		}
		for _, m := range modes {
			add(path, m)
		}
		break
	}

	modesDir := filepath.Join(dir, "modes")
	entries, err := os.ReadDir(modesDir)
	if err != nil {
		return issues
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(modesDir, entry.Name())
		m, err := parseModeFile(path, src)
		if err != nil {
			issues = append(issues, Issue{Path: path, Err: err})
			continue
		}
		add(path, m)
	}

	return issues
}

// aggregatorDoc is the layout of a modes.json / modes.jsonc file. Records are
// a list so the file's authoring order survives decoding.
type aggregatorDoc struct {
	Modes []modeRecord `json:"modes"`
}

type modeRecord struct {
	Slug         string           `json:"slug"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Capabilities []Capability     `json:"capabilities"`
	Edit         *EditRestriction `json:"edit,omitempty"`
	Instructions string           `json:"instructions"`
}

// parseAggregator reads a JSON aggregator file. JSONC comments are allowed.
func parseAggregator(path string, src Source) ([]*Mode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data = jsonc.ToJSON(data)

	var doc aggregatorDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	modes := make([]*Mode, 0, len(doc.Modes))
	for _, rec := range doc.Modes {
		modes = append(modes, &Mode{
			Slug:         rec.Slug,
			Name:         rec.Name,
			Description:  rec.Description,
			Capabilities: rec.Capabilities,
			Source:       src,
			Edit:         rec.Edit,
			Instructions: rec.Instructions,
		})
	}
	return modes, nil
}

// frontMatter is the YAML header of a per-mode markdown file.
type frontMatter struct {
	Name         string           `yaml:"name"`
	Description  string           `yaml:"description"`
	Capabilities []Capability     `yaml:"capabilities"`
	Edit         *EditRestriction `yaml:"edit"`
}

// parseModeFile parses a markdown file as a mode definition. The slug is the
// file name; the YAML front matter carries the remaining fields and the body
// is the instruction prose, stored verbatim.
func parseModeFile(path string, src Source) (*Mode, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSuffix(filepath.Base(path), ".md")

	header, body, err := splitFrontMatter(string(content))
	if err != nil {
		return nil, &ValidationError{Slug: slug, Field: "front matter", Reason: err.Error()}
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, &ValidationError{Slug: slug, Field: "front matter", Reason: err.Error()}
	}

	return &Mode{
		Slug:         slug,
		Name:         fm.Name,
		Description:  fm.Description,
		Capabilities: fm.Capabilities,
		Source:       src,
		Edit:         fm.Edit,
		Instructions: strings.TrimSpace(body),
	}, nil
}

// splitFrontMatter separates the --- fenced header from the body.
func splitFrontMatter(content string) (header, body string, err error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", "", fmt.Errorf("missing opening --- fence")
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			header = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return header, body, nil
		}
	}

	return "", "", fmt.Errorf("missing closing --- fence")
}
