package vcs

import (
	"strconv"
	"strings"
)

// FileChanges tallies a name-status style listing (one file per line,
// leading status letter) into "~<modified>+<added>-<deleted>". Renames
// count as modified. Zero terms are omitted; no changes yields "".
func FileChanges(output string) string {
	var added, modified, deleted int
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line[0] {
		case 'A':
			added++
		case 'M', 'R':
			modified++
		case 'D':
			deleted++
		}
	}

	var b strings.Builder
	if modified > 0 {
		b.WriteString("~" + strconv.Itoa(modified))
	}
	if added > 0 {
		b.WriteString("+" + strconv.Itoa(added))
	}
	if deleted > 0 {
		b.WriteString("-" + strconv.Itoa(deleted))
	}
	return b.String()
}

// LineChanges reads the trailer of a shortstat/diff-stat listing, e.g.
// "3 files changed, 10 insertions(+), 4 deletions(-)", and renders it as
// "+10-4". Zero terms are omitted; an absent or unparsable trailer yields "".
func LineChanges(output string) string {
	trailer := lastLine(output)
	if trailer == "" {
		return ""
	}

	var insertions, deletions int
	for _, clause := range strings.Split(trailer, ",") {
		clause = strings.TrimSpace(clause)
		switch {
		case strings.Contains(clause, "insertion"):
			insertions = leadingInt(clause)
		case strings.Contains(clause, "deletion"):
			deletions = leadingInt(clause)
		}
	}

	var b strings.Builder
	if insertions > 0 {
		b.WriteString("+" + strconv.Itoa(insertions))
	}
	if deletions > 0 {
		b.WriteString("-" + strconv.Itoa(deletions))
	}
	return b.String()
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// leadingInt returns the first whitespace-separated field as an int, 0 if
// it is not a number.
func leadingInt(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// firstLine returns the trimmed first line of s.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
