// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package diag

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// Highlight is one source span an editor should mark for an error.
type Highlight struct {
	Token string    `json:"token"`
	Range hcl.Range `json:"-"`
	Line  int       `json:"line"`
	Start int       `json:"start"`
	End   int       `json:"end"`
}

var classHeader = regexp.MustCompile(`class\s+(\w+)\s*\{`)

type srcLine struct {
	text   string
	offset int
}

func splitLines(src []byte) []srcLine {
	var out []srcLine
	offset := 0
	for _, l := range bytes.SplitAfter(src, []byte("\n")) {
		if len(l) == 0 {
			continue
		}
		out = append(out, srcLine{text: strings.TrimRight(string(l), "\r\n"), offset: offset})
		offset += len(l)
	}
	return out
}

// Locate resolves the search value of err to concrete source spans. For
// database, ID and relationship errors the same token can appear on several
// lines, so every token is searched from the reported line forward, limited
// to the body of its class when the token is scoped; when the forward scan
// finds nothing it restarts at the top of the file. Other errors are looked up
// on the reported line only. If nothing matches, the error subject itself is
// returned.
func Locate(src []byte, err *SemanticError) []Highlight {
	lines := splitLines(src)
	filename := err.Subject.Filename
	startLine := err.Subject.Start.Line
	if startLine < 1 {
		startLine = 1
	}

	var out []Highlight
	for _, entry := range err.Search.Entries() {
		words := strings.Fields(entry.Token)
		if len(words) == 0 {
			continue
		}
		var found []Highlight
		if err.Type.NeedsLineSearch() {
			found = scan(lines, filename, startLine, entry.Class, words)
			if found == nil && startLine > 1 {
				found = scan(lines, filename, 1, entry.Class, words)
			}
		} else if startLine <= len(lines) {
			found = matchLine(lines[startLine-1], filename, startLine, words)
		}
		out = append(out, found...)
	}

	if len(out) == 0 {
		out = append(out, highlightFromRange(src, err.Subject))
	}
	return out
}

func scan(lines []srcLine, filename string, from int, class string, words []string) []Highlight {
	inClass := class == ""
	// A scoped token may start inside its class body; look back for the
	// enclosing header so the forward scan knows where it is.
	if !inClass {
		for i := from - 1; i >= 1 && i <= len(lines); i-- {
			if m := classHeader.FindStringSubmatch(lines[i-1].text); m != nil {
				inClass = m[1] == class
				break
			}
		}
	}
	for n := from; n <= len(lines); n++ {
		l := lines[n-1]
		if class != "" {
			if m := classHeader.FindStringSubmatch(l.text); m != nil {
				inClass = m[1] == class
			}
		}
		if !inClass {
			continue
		}
		if h := matchLine(l, filename, n, words); h != nil {
			return h
		}
	}
	return nil
}

// matchLine returns one highlight per word when every word occurs in the line
// as a whole word.
func matchLine(l srcLine, filename string, lineNo int, words []string) []Highlight {
	var out []Highlight
	for _, w := range words {
		idx := wordIndex(l.text, w)
		if idx < 0 {
			return nil
		}
		startCol := utf8.RuneCountInString(l.text[:idx]) + 1
		endCol := startCol + utf8.RuneCountInString(w)
		out = append(out, Highlight{
			Token: w,
			Line:  lineNo,
			Start: startCol,
			End:   endCol,
			Range: hcl.Range{
				Filename: filename,
				Start:    hcl.Pos{Line: lineNo, Column: startCol, Byte: l.offset + idx},
				End:      hcl.Pos{Line: lineNo, Column: endCol, Byte: l.offset + idx + len(w)},
			},
		})
	}
	return out
}

func isWordByte(b byte) bool {
	return b == '_' || b == '$' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= utf8.RuneSelf
}

func wordIndex(s, w string) int {
	from := 0
	for {
		i := strings.Index(s[from:], w)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(w)
		leftOK := i == 0 || !isWordByte(s[i-1]) || !isWordByte(w[0])
		rightOK := end == len(s) || !isWordByte(s[end]) || !isWordByte(w[len(w)-1])
		if leftOK && rightOK {
			return i
		}
		from = i + 1
	}
}

func highlightFromRange(src []byte, rng hcl.Range) Highlight {
	token := ""
	if rng.End.Byte > rng.Start.Byte && rng.End.Byte <= len(src) {
		token = string(src[rng.Start.Byte:rng.End.Byte])
	}
	end := rng.End.Column
	if rng.End.Line != rng.Start.Line {
		end = rng.Start.Column + utf8.RuneCountInString(token)
	}
	return Highlight{
		Token: token,
		Range: rng,
		Line:  rng.Start.Line,
		Start: rng.Start.Column,
		End:   end,
	}
}
