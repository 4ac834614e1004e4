// Package ui provides the box-drawing helpers used by the plain-text
// report listing.
package ui

// Tree hierarchy symbols using box drawing characters
const (
	TreeBranch     = "├── " // Branch connector
	TreeLastBranch = "└── " // Last branch connector
	TreeContinue   = "│   " // Vertical line, parent has more siblings
	TreeIndent     = "    " // Parent was last, no vertical line needed
)

// BuildTreePrefix generates a tree prefix for an entry at the given depth.
// parentIsLast records, per ancestor level, whether that ancestor was the
// last among its siblings.
func BuildTreePrefix(depth int, isLast bool, parentIsLast []bool) string {
	if depth == 0 {
		return ""
	}

	var prefix string
	for i := 0; i < depth-1; i++ {
		if i < len(parentIsLast) && parentIsLast[i] {
			prefix += TreeIndent
		} else {
			prefix += TreeContinue
		}
	}

	if isLast {
		prefix += TreeLastBranch
	} else {
		prefix += TreeBranch
	}
	return prefix
}

// StatusChar returns the single-character marker used for a status class
// in text listings.
func StatusChar(statusClass string) string {
	switch statusClass {
	case "pass":
		return "✓"
	case "fail":
		return "✗"
	case "skip":
		return "⊝"
	case "error":
		return "⚠"
	default:
		return "?"
	}
}
