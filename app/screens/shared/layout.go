package shared

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// NameColumnWidth returns the width of the recipe name column.
//
// Rules:
// - Fit the longest name plus a gap
// - Clamp to [minName, ~40% of the terminal]
// - Never below minName, even on tiny terminals
func NameColumnWidth(termWidth, longest int) int {
	const (
		minName = 12
		gap     = 2
	)
	w := longest + gap
	if w < minName {
		w = minName
	}
	if termWidth > 0 {
		maxName := (termWidth * 2) / 5
		if maxName < minName {
			maxName = minName
		}
		if w > maxName {
			w = maxName
		}
	}
	return w
}

// ProjectHeader renders a standard gray header with the workspace folder name.
func ProjectHeader(projectPath string) string {
	folderName := filepath.Base(projectPath)
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Render(fmt.Sprintf("📦 %s", folderName))
}
