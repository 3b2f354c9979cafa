// Package mode provides the operating-mode registry for modekit.
//
// A mode is a named, fixed-permission behavior profile for an external coding
// agent: a stable slug, a human-readable name, a capability set drawn from a
// fixed vocabulary, a provenance tag, and a free-text instruction body. The
// agent runtime reads the registry at session start and restricts itself to
// the selected mode's capabilities; nothing in this package executes anything.
//
// # Capabilities
//
// The vocabulary is closed: read, edit, browse, command (run external
// commands), and mcp (call external tools). A definition declaring anything
// else is refused at load time with a [ValidationError] naming the field.
// The edit capability may carry an [EditRestriction] narrowing it to files
// matching a wildcard pattern:
//
//	edit:
//	  pattern: "**/*.py"
//	  note: Refactors touch Python sources only
//
// # Sources and precedence
//
// Modes come from three sources, in rising precedence: built-ins compiled
// into the binary, the global config directory, and the project's .modekit
// directory. Each file source contributes a modes.json (or modes.jsonc)
// aggregator plus per-mode markdown files under modes/, where the file name
// is the slug and a YAML front matter block carries the remaining fields.
// A higher-precedence definition replaces a lower one slug-for-slug, so the
// loaded registry always has pairwise-unique slugs.
//
// # Registry
//
// The [Registry] answers exact-match lookup and ordered listing:
//
//	reg, issues := mode.NewLoader(globalDir, projectDir).Load()
//	m, err := reg.Get("python-tdd")
//	for _, m := range reg.List() { ... }
//
// Get never case-folds or fuzzy-matches; an absent slug yields a
// [NotFoundError]. List returns authoring order: built-ins first, then loaded
// definitions in aggregator/file order, with overrides keeping the position
// of the slug they replace. The set is static per checkout; reloads triggered
// by the file watcher swap the whole set via [Registry.SetModes].
package mode
