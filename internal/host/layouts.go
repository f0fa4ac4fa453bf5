package host

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Layouts shipped with zellij itself. They are always offered even when no
// layout directory is configured.
var builtinLayouts = []string{"default", "strider", "compact"}

// FetchLayouts returns the builtin layouts followed by every .kdl file found
// in the configured layout directory, sorted by name.
func (c *Client) FetchLayouts() (LayoutSnapshot, error) {
	snapshot := LayoutSnapshot{}
	for _, name := range builtinLayouts {
		snapshot.Layouts = append(snapshot.Layouts, Layout{Name: name, Builtin: true})
	}

	dir := strings.TrimSpace(c.LayoutDir)
	if dir == "" {
		return snapshot, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return snapshot, nil
		}
		return snapshot, err
	}

	var custom []Layout
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".kdl") {
			continue
		}
		custom = append(custom, Layout{
			Name: strings.TrimSuffix(name, ".kdl"),
			Path: filepath.Join(dir, name),
		})
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i].Name < custom[j].Name })
	snapshot.Layouts = append(snapshot.Layouts, custom...)
	return snapshot, nil
}
