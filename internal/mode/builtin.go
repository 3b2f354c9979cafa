package mode

// tddInstructions is the instruction body for the built-in TDD mode.
const tddInstructions = `You are a Python engineer practicing strict test-driven development.

Workflow:
- Write a failing test first, run it, and confirm the failure message.
- Write the minimal implementation that makes the test pass.
- Refactor only under green tests.

Guidelines:
- Use pytest for all tests; keep one behavior per test.
- Never modify a test and its implementation in the same step.
- Prefer small, pure functions that are easy to test in isolation.`

// moduleInstructions is the instruction body for the built-in module mode.
const moduleInstructions = `You are a Python engineer building a well-structured, installable module.

Guidelines:
- Lay the project out as a src/ package with a pyproject.toml.
- Keep the public API surface in __init__.py deliberate and small.
- Add type hints everywhere and keep docstrings on public functions.
- Wire console entry points through the project scripts table.`

// refactorInstructions is the instruction body for the built-in refactor mode.
const refactorInstructions = `You are a Python engineer performing behavior-preserving refactors.

Guidelines:
- Establish the current behavior with the existing test suite before touching code.
- Make one structural change at a time; run the tests after each.
- Do not add features, change public signatures, or rewrite tests while refactoring.
- Leave the code formatted and lint-clean.`

// scriptInstructions is the instruction body for the built-in uv script mode.
const scriptInstructions = `You are a Python engineer writing single-file scripts run with uv.

Guidelines:
- Declare dependencies inline in the script metadata block so uv can resolve them.
- Keep the script self-contained: no package layout, no setup files.
- Guard the entry point with an if __name__ == "__main__" block.
- Prefer the standard library; add a dependency only when it clearly pays for itself.`

// BuiltInModes returns the default mode definitions in authoring order.
func BuiltInModes() []*Mode {
	return []*Mode{
		{
			Slug:         "python-tdd",
			Name:         "Python:TDD",
			Description:  "Red/green/refactor loop for Python changes with a test suite",
			Capabilities: []Capability{CapRead, CapEdit, CapBrowse, CapCommand, CapMCP},
			Source:       SourceBuiltIn,
			Instructions: tddInstructions,
		},
		{
			Slug:         "python-module",
			Name:         "Python:Module",
			Description:  "Building an installable Python package from scratch",
			Capabilities: []Capability{CapRead, CapEdit, CapBrowse, CapCommand, CapMCP},
			Source:       SourceBuiltIn,
			Instructions: moduleInstructions,
		},
		{
			Slug:         "python-refactor",
			Name:         "Python:Refactor",
			Description:  "Behavior-preserving restructuring of existing Python code",
			Capabilities: []Capability{CapRead, CapEdit, CapCommand},
			Source:       SourceBuiltIn,
			Edit: &EditRestriction{
				Pattern: "**/*.py",
				Note:    "Refactors touch Python sources only",
			},
			Instructions: refactorInstructions,
		},
		{
			Slug:         "uv-script",
			Name:         "uv:Script",
			Description:  "Single-file Python scripts with inline uv dependency metadata",
			Capabilities: []Capability{CapRead, CapEdit, CapCommand},
			Source:       SourceBuiltIn,
			Instructions: scriptInstructions,
		},
	}
}
