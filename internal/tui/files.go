package tui

import (
	"os"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/samber/lo"

	"geodraw/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	items := lo.FilterMap(entries, func(e os.DirEntry, _ int) (list.Item, bool) {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || !geom.SupportedExt(ext) {
			return nil, false
		}
		return fileItem{title: e.Name(), desc: ext, path: filepath.Join(m.cwd, e.Name())}, true
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
}

func baseName(p string) string {
	return filepath.Base(p)
}
