package output

import (
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("MEMBER", "SCORE")
	tbl.AddRow("Alice", "95.0")
	tbl.AddRow("Bob", "87.2")

	output := tbl.Render()

	for _, want := range []string{"MEMBER", "SCORE", "Alice", "Bob", "─"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	// Header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if output := tbl.Render(); output != "" {
		t.Errorf("expected empty output for empty table, got %q", output)
	}
}

func TestTable_RightAlign(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("MEMBER", "SCORE").RightAlign(1)
	tbl.AddRow("Alice", "5")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	// The score column is five wide ("SCORE"), so the cell pads on the
	// left.
	dataLine := lines[2]
	if !strings.HasSuffix(dataLine, "    5") {
		t.Errorf("expected right-aligned cell, got %q", dataLine)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "LONGHEADER")
	tbl.AddRow("VeryLongValue", "X")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "VeryLongValue") {
		t.Error("expected data row to contain 'VeryLongValue'")
	}

	// Short rows in a widened column still line up: the separator under
	// column A spans the widest cell.
	if !strings.HasPrefix(lines[1], strings.Repeat("─", len("VeryLongValue"))) {
		t.Errorf("separator not widened: %q", lines[1])
	}
}

func TestTable_String(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("COL")
	tbl.AddRow("val")
	if tbl.String() != tbl.Render() {
		t.Error("String() != Render()")
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	rendered := StyleHeader.Render("test")
	if strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}
	SetNoColor(false)
}

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	full := ScoreBar(100, 10)
	if strings.Count(full, "█") != 10 {
		t.Errorf("full bar = %q", full)
	}

	half := ScoreBar(50, 10)
	if strings.Count(half, "█") != 5 || strings.Count(half, "░") != 5 {
		t.Errorf("half bar = %q", half)
	}

	empty := ScoreBar(0, 10)
	if strings.Count(empty, "░") != 10 {
		t.Errorf("empty bar = %q", empty)
	}
}
