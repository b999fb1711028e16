// Package mathtext typesets the LaTeX fragments models put in their
// reasoning and answers into plain Unicode for a terminal.
package mathtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const noStop rune = -1

var displayDelimiters = strings.NewReplacer(
	"$$", "",
	`\[`, "",
	`\]`, "",
	`\(`, "",
	`\)`, "",
)

// Render rewrites the LaTeX in s into Unicode. Unknown commands are kept
// verbatim.
func Render(s string) string {
	if !strings.ContainsAny(s, `\^_{}$`) {
		return s
	}
	s = stripInlineDollars(displayDelimiters.Replace(s))
	p := &parser{src: []rune(s)}
	return p.render(noStop)
}

// stripInlineDollars removes paired $...$ delimiters. An opening $ needs a
// non-space on its right and a closing $ a non-space on its left, not
// followed by a digit, so prices like "$5 and $10" survive.
func stripInlineDollars(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != '$' || escaped(rs, i) || i+1 >= len(rs) || unicode.IsSpace(rs[i+1]) {
			b.WriteRune(r)
			continue
		}
		end := closingDollar(rs, i+1)
		if end < 0 {
			b.WriteRune(r)
			continue
		}
		b.WriteString(string(rs[i+1 : end]))
		i = end
	}
	return b.String()
}

func closingDollar(rs []rune, from int) int {
	for j := from + 1; j < len(rs); j++ {
		if rs[j] != '$' || escaped(rs, j) || unicode.IsSpace(rs[j-1]) {
			continue
		}
		if j+1 < len(rs) && unicode.IsDigit(rs[j+1]) {
			continue
		}
		return j
	}
	return -1
}

func escaped(rs []rune, i int) bool {
	return i > 0 && rs[i-1] == '\\'
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune { return p.src[p.pos] }

// render converts runes up to stop, which is consumed. With noStop it runs
// to the end of input.
func (p *parser) render(stop rune) string {
	var b strings.Builder
	for !p.eof() {
		r := p.peek()
		switch {
		case r == stop:
			p.pos++
			return b.String()
		case r == '\\':
			b.WriteString(p.command())
		case r == '{':
			p.pos++
			b.WriteString(p.render('}'))
		case r == '}':
			p.pos++
		case r == '^':
			p.pos++
			b.WriteString(script(p.scriptArg(), superscripts, "^"))
		case r == '_':
			p.pos++
			b.WriteString(script(p.scriptArg(), subscripts, "_"))
		default:
			p.pos++
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (p *parser) skipSpaces() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

// arg reads one command argument: a braced group, a command or one rune.
func (p *parser) arg() string {
	p.skipSpaces()
	if p.eof() {
		return ""
	}
	switch r := p.peek(); r {
	case '{':
		p.pos++
		return p.render('}')
	case '\\':
		return p.command()
	default:
		p.pos++
		return string(r)
	}
}

// scriptArg is arg for ^ and _. Plain-text exponents are common in model
// output, so a run of digits or a parenthesised group is taken whole.
func (p *parser) scriptArg() string {
	if p.eof() {
		return ""
	}
	switch r := p.peek(); {
	case unicode.IsDigit(r):
		start := p.pos
		for !p.eof() && unicode.IsDigit(p.peek()) {
			p.pos++
		}
		return string(p.src[start:p.pos])
	case r == '(':
		p.pos++
		return "(" + p.render(')') + ")"
	default:
		return p.arg()
	}
}

func (p *parser) command() string {
	p.pos++ // backslash
	if p.eof() {
		return `\`
	}

	var name string
	if r := p.peek(); unicode.IsLetter(r) {
		start := p.pos
		for !p.eof() && unicode.IsLetter(p.peek()) {
			p.pos++
		}
		name = string(p.src[start:p.pos])
	} else {
		p.pos++
		name = string(r)
	}

	switch name {
	case "frac", "dfrac", "tfrac", "cfrac":
		num := p.arg()
		den := p.arg()
		return wrap(num) + "/" + wrap(den)
	case "sqrt":
		return p.sqrt()
	case "boxed", "text", "textrm", "textbf", "textit", "mathrm", "mathbf",
		"mathit", "mathsf", "mathtt", "operatorname", "mbox", "emph":
		return p.arg()
	case "left", "right", "big", "Big", "bigl", "bigr", "Bigl", "Bigr":
		return p.delimiter()
	case "displaystyle", "textstyle", "limits", "nolimits", "!":
		return ""
	case ",", ";", ":", " ", "quad":
		return " "
	case "qquad":
		return "  "
	case `\`:
		return "\n"
	case "{", "}", "%", "$", "#", "&", "_":
		return name
	}
	if sym, ok := symbols[name]; ok {
		return sym
	}
	return `\` + name
}

func (p *parser) sqrt() string {
	p.skipSpaces()
	index := ""
	if !p.eof() && p.peek() == '[' {
		p.pos++
		index = p.render(']')
	}
	radicand := wrap(p.arg())
	switch index {
	case "", "2":
		return "√" + radicand
	case "3":
		return "∛" + radicand
	case "4":
		return "∜" + radicand
	default:
		return script(index, superscripts, "^") + "√" + radicand
	}
}

// delimiter consumes the delimiter after \left or \right.
func (p *parser) delimiter() string {
	p.skipSpaces()
	if p.eof() {
		return ""
	}
	switch r := p.peek(); r {
	case '.':
		p.pos++
		return ""
	case '\\':
		return p.command()
	default:
		p.pos++
		return string(r)
	}
}

// wrap parenthesises s unless it is a single number or identifier.
func wrap(s string) string {
	if utf8.RuneCountInString(s) <= 1 {
		return s
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' {
			return "(" + s + ")"
		}
	}
	return s
}

func script(s string, table map[rune]rune, marker string) string {
	if s == "" {
		return ""
	}
	if marker == "^" && (s == "∘" || s == "°") {
		return "°"
	}

	var b strings.Builder
	for _, r := range s {
		m, ok := table[r]
		if !ok {
			if utf8.RuneCountInString(s) == 1 || strings.HasPrefix(s, "(") {
				return marker + s
			}
			return marker + "(" + s + ")"
		}
		b.WriteRune(m)
	}
	return b.String()
}
