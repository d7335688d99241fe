package output

import (
	"path"
	"slices"
	"strings"
)

// BarrelFileName returns the barrel file for a directory of components.
func BarrelFileName(typescript bool) string {
	if typescript {
		return "index.ts"
	}
	return "index.js"
}

// MergeSortedExports merges newLine into the lines of a barrel file. Blank
// lines are dropped, "//" comment lines come first in their original order,
// and export lines follow sorted byte-wise without duplicates. An empty
// newLine only normalizes.
func MergeSortedExports(lines []string, newLine string) []string {
	var comments, exports []string
	for _, l := range lines {
		l = strings.TrimRight(l, " \t\r")
		switch {
		case strings.TrimSpace(l) == "":
		case strings.HasPrefix(strings.TrimSpace(l), "//"):
			comments = append(comments, l)
		default:
			exports = append(exports, l)
		}
	}
	if newLine = strings.TrimSpace(newLine); newLine != "" {
		exports = append(exports, newLine)
	}

	slices.Sort(exports)
	exports = slices.Compact(exports)
	return append(comments, exports...)
}

// RemoveExports drops the export lines whose module specifier points at
// component ("./HomeIcon", "./HomeIcon.vue"). Other lines are kept as is.
func RemoveExports(lines []string, component string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if target, ok := exportTarget(l); ok && target == component {
			continue
		}
		out = append(out, l)
	}
	return out
}

// exportTarget extracts the component a re-export line points at.
func exportTarget(line string) (string, bool) {
	_, spec, ok := strings.Cut(line, " from ")
	if !ok {
		return "", false
	}
	spec = strings.TrimSpace(spec)
	spec = strings.TrimSuffix(spec, ";")
	spec = strings.Trim(spec, `'"`)
	name, ok := strings.CutPrefix(spec, "./")
	if !ok {
		return "", false
	}
	return strings.TrimSuffix(name, path.Ext(name)), true
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
