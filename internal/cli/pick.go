package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/roffman/pkg/io"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sourceFile is a page source found on disk.
type sourceFile struct {
	Path   string
	Format string
}

// findSources lists the page sources directly inside dir, sorted by path.
func findSources(dir string) ([]sourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []sourceFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		format, err := io.FormatFromPath(e.Name())
		if err != nil {
			continue
		}
		files = append(files, sourceFile{Path: filepath.Join(dir, e.Name()), Format: format})
	}
	slices.SortFunc(files, func(a, b sourceFile) int { return strings.Compare(a.Path, b.Path) })
	return files, nil
}

// pickSource lets the user choose a source in dir. It returns "" when
// nothing was chosen.
func pickSource(dir string) (string, error) {
	files, err := findSources(dir)
	if err != nil {
		return "", err
	}
	switch len(files) {
	case 0:
		printInfo("No page sources in %s", dir)
		return "", nil
	case 1:
		printInfo("Found: %s", StyleHighlight.Render(files[0].Path))
		return files[0].Path, nil
	}

	final, err := tea.NewProgram(newSourceListModel(files)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(sourceListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Path, nil
}

// sourceListModel is the bubbletea model for choosing a page source.
type sourceListModel struct {
	Files    []sourceFile
	Cursor   int
	Selected *sourceFile
}

func newSourceListModel(files []sourceFile) sourceListModel {
	return sourceListModel{Files: files}
}

func (m sourceListModel) Init() tea.Cmd {
	return nil
}

func (m sourceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Files)-1 {
			m.Cursor++
		}
	case "enter":
		m.Selected = &m.Files[m.Cursor]
		return m, tea.Quit
	}
	return m, nil
}

func (m sourceListModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select Page Source"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, f := range m.Files {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "> "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%-30s  %s", cursor, f.Path, listDimStyle.Render(f.Format))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
