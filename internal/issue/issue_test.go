// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

// allIds lists every catalog identifier.
var allIds = []Id{
	FileNotFoundId,
	InvalidSelectionId,
	InvalidDelimiterId,
	InvalidUsageId,
	CommandNotFoundId,
	ConfigLoadFailedId,
	ScriptExecutionFailedId,
}

// stubRender replaces the glamour renderer with an identity function for the
// duration of the test.
func stubRender(t *testing.T) {
	t.Helper()

	originalRender := render
	t.Cleanup(func() { render = originalRender })
	render = func(in string, _ string) (string, error) {
		return in, nil
	}
}

func TestId_Constants(t *testing.T) {
	t.Parallel()

	seen := make(map[Id]bool)
	for _, id := range allIds {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if FileNotFoundId != 1 {
		t.Errorf("FileNotFoundId = %d, want 1", FileNotFoundId)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{FileNotFoundId, false, "could not be read"},
		{InvalidSelectionId, false, "Invalid selection list"},
		{InvalidDelimiterId, false, "exactly one byte"},
		{InvalidUsageId, false, "Invalid flags"},
		{CommandNotFoundId, false, "Command not found"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{ScriptExecutionFailedId, false, "Script execution failed"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			t.Parallel()

			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("Get(%d).Id() = %d", tt.id, issue.Id())
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	issues := Values()
	if len(issues) != len(allIds) {
		t.Fatalf("Values() returned %d issues, want %d", len(issues), len(allIds))
	}

	for i, issue := range issues {
		if issue.Id() != allIds[i] {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, issue.Id(), allIds[i])
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("Issue %d has empty MarkdownMsg", issue.Id())
		}
	}
}

//nolint:paralleltest // swaps the package-level renderer
func TestIssue_Render_ListsLinks(t *testing.T) {
	stubRender(t)

	testIssue := &Issue{
		id:    Id(9997),
		mdMsg: "# Test Issue",
		links: []HttpLink{"https://a.example.com", "https://b.example.com"},
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	want := "# Test Issue\n\n## See also\n- <https://a.example.com>\n- <https://b.example.com>\n"
	if rendered != want {
		t.Errorf("Render() = %q, want %q", rendered, want)
	}
}

//nolint:paralleltest // swaps the package-level renderer
func TestIssue_Render(t *testing.T) {
	stubRender(t)

	rendered, err := Get(InvalidSelectionId).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "textr cut -f 1,3") {
		t.Error("Render() output should contain the examples")
	}
	if !strings.Contains(rendered, "## See also") {
		t.Error("Render() output should list the external links")
	}
}

//nolint:paralleltest // swaps the package-level renderer
func TestIssue_Render_NoLinks(t *testing.T) {
	stubRender(t)

	testIssue := &Issue{
		id:    Id(9998),
		mdMsg: "# Test Issue\n\nNo links here.",
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if rendered != "# Test Issue\n\nNo links here." {
		t.Errorf("Render() = %q", rendered)
	}
}

//nolint:paralleltest // swaps the package-level renderer
func TestAllIssuesAreRenderable(t *testing.T) {
	stubRender(t)

	for _, issue := range Values() {
		rendered, err := issue.Render("")
		if err != nil {
			t.Errorf("Issue %d failed to render: %v", issue.Id(), err)
		}
		if rendered == "" {
			t.Errorf("Issue %d rendered to empty string", issue.Id())
		}
	}
}

func TestIssue_Render_Glamour(t *testing.T) {
	t.Parallel()

	rendered, err := Get(InvalidDelimiterId).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(rendered, "exactly one byte") {
		t.Errorf("Render() = %q, want the issue body", rendered)
	}
}
