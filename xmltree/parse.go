// github.com/clipforge/svgmeta - RDF licensing metadata for SVG clip art
// Copyright (C) 2026  The svgmeta authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package xmltree

import (
	"fmt"
	"strconv"
	"strings"
)

// A SyntaxError describes a malformed document.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error on line %d: %s", e.Line, e.Msg)
}

// Parse parses an XML document or fragment.  Element and attribute names
// are kept as written, text before the root element is captured verbatim as
// the document preamble, and whitespace-only text between elements is
// dropped.
func Parse(data []byte) (*Document, error) {
	p := &parser{data: string(data)}

	if err := p.skipPreamble(); err != nil {
		return nil, err
	}
	preamble := p.data[:p.pos]

	root, err := p.parseElement()
	if err != nil {
		return nil, err
	}

	// Only whitespace, comments and processing instructions may follow
	// the root element.
	for p.pos < len(p.data) {
		switch {
		case isSpace(p.data[p.pos]):
			p.pos++
		case strings.HasPrefix(p.data[p.pos:], "<!--"):
			if _, err := p.readComment(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(p.data[p.pos:], "<?"):
			if err := p.skipProcInst(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errf("unexpected content after root element")
		}
	}

	return &Document{Preamble: preamble, Root: root}, nil
}

type parser struct {
	data string
	pos  int
}

func (p *parser) errf(format string, args ...any) error {
	line := strings.Count(p.data[:p.pos], "\n") + 1
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// skipPreamble advances the parser to the start of the root element.
// Everything skipped becomes Document.Preamble.
func (p *parser) skipPreamble() error {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case isSpace(c):
			p.pos++
		case c != '<':
			return p.errf("text outside of root element")
		case strings.HasPrefix(p.data[p.pos:], "<?"):
			if err := p.skipProcInst(); err != nil {
				return err
			}
		case strings.HasPrefix(p.data[p.pos:], "<!--"):
			if _, err := p.readComment(); err != nil {
				return err
			}
		case strings.HasPrefix(p.data[p.pos:], "<!"):
			if err := p.skipDirective(); err != nil {
				return err
			}
		default:
			return nil // root element starts here
		}
	}
	return p.errf("no root element")
}

func (p *parser) skipProcInst() error {
	end := strings.Index(p.data[p.pos:], "?>")
	if end < 0 {
		return p.errf("unterminated processing instruction")
	}
	p.pos += end + 2
	return nil
}

func (p *parser) readComment() (string, error) {
	start := p.pos + 4 // after "<!--"
	end := strings.Index(p.data[start:], "-->")
	if end < 0 {
		return "", p.errf("unterminated comment")
	}
	body := p.data[start : start+end]
	p.pos = start + end + 3
	return body, nil
}

// skipDirective skips a <!DOCTYPE ...> declaration, including an internal
// subset in square brackets.
func (p *parser) skipDirective() error {
	depth := 0
	for i := p.pos + 2; i < len(p.data); i++ {
		switch p.data[i] {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth == 0 {
				p.pos = i + 1
				return nil
			}
		}
	}
	return p.errf("unterminated directive")
}

// parseElement parses one element.  The parser must be positioned at the
// opening "<".
func (p *parser) parseElement() (*Node, error) {
	p.pos++ // consume '<'
	name, err := p.readName()
	if err != nil {
		return nil, err
	}
	n := NewElement(name)

	// attributes
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, p.errf("unexpected end of input in <%s>", name)
		}
		switch p.data[p.pos] {
		case '/':
			if !strings.HasPrefix(p.data[p.pos:], "/>") {
				return nil, p.errf("malformed tag <%s>", name)
			}
			p.pos += 2
			return n, nil
		case '>':
			p.pos++
			if err := p.parseContent(n); err != nil {
				return nil, err
			}
			return n, nil
		default:
			attr, err := p.readAttr()
			if err != nil {
				return nil, err
			}
			n.Attrs = append(n.Attrs, attr)
		}
	}
}

// parseContent parses the children of n up to and including the matching
// end tag.
func (p *parser) parseContent(n *Node) error {
	for {
		if p.pos >= len(p.data) {
			return p.errf("missing end tag </%s>", n.Name)
		}
		rest := p.data[p.pos:]
		switch {
		case strings.HasPrefix(rest, "</"):
			p.pos += 2
			end, err := p.readName()
			if err != nil {
				return err
			}
			p.skipSpace()
			if p.pos >= len(p.data) || p.data[p.pos] != '>' {
				return p.errf("malformed end tag </%s>", end)
			}
			p.pos++
			if end != n.Name {
				return p.errf("end tag </%s> does not match start tag <%s>", end, n.Name)
			}
			return nil
		case strings.HasPrefix(rest, "<!--"):
			body, err := p.readComment()
			if err != nil {
				return err
			}
			n.AppendChild(&Node{Type: CommentNode, Data: body})
		case strings.HasPrefix(rest, "<![CDATA["):
			end := strings.Index(rest[9:], "]]>")
			if end < 0 {
				return p.errf("unterminated CDATA section")
			}
			n.AppendText(rest[9 : 9+end])
			p.pos += 9 + end + 3
		case strings.HasPrefix(rest, "<?"):
			if err := p.skipProcInst(); err != nil {
				return err
			}
		case rest[0] == '<':
			child, err := p.parseElement()
			if err != nil {
				return err
			}
			n.AppendChild(child)
		default:
			raw := rest
			if i := strings.IndexByte(rest, '<'); i >= 0 {
				raw = rest[:i]
			}
			text, err := p.decodeText(raw)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) != "" {
				n.AppendText(text)
			}
			p.pos += len(raw)
		}
	}
}

func (p *parser) readAttr() (Attr, error) {
	name, err := p.readName()
	if err != nil {
		return Attr{}, err
	}
	p.skipSpace()
	if p.pos >= len(p.data) || p.data[p.pos] != '=' {
		return Attr{}, p.errf("attribute %s without value", name)
	}
	p.pos++
	p.skipSpace()
	if p.pos >= len(p.data) {
		return Attr{}, p.errf("unexpected end of input in attribute %s", name)
	}
	quote := p.data[p.pos]
	if quote != '"' && quote != '\'' {
		return Attr{}, p.errf("attribute %s value is not quoted", name)
	}
	p.pos++
	end := strings.IndexByte(p.data[p.pos:], quote)
	if end < 0 {
		return Attr{}, p.errf("unterminated value for attribute %s", name)
	}
	value, err := p.decodeText(p.data[p.pos : p.pos+end])
	if err != nil {
		return Attr{}, err
	}
	p.pos += end + 1
	return Attr{Name: name, Value: value}, nil
}

func (p *parser) readName() (string, error) {
	start := p.pos
	if p.pos >= len(p.data) || !isNameStart(p.data[p.pos]) {
		return "", p.errf("invalid name")
	}
	for p.pos < len(p.data) && isNameByte(p.data[p.pos]) {
		p.pos++
	}
	return p.data[start:p.pos], nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) && isSpace(p.data[p.pos]) {
		p.pos++
	}
}

// decodeText resolves entity and character references in raw character
// data.
func (p *parser) decodeText(raw string) (string, error) {
	if !strings.Contains(raw, "&") {
		return raw, nil
	}
	var b strings.Builder
	for len(raw) > 0 {
		i := strings.IndexByte(raw, '&')
		if i < 0 {
			b.WriteString(raw)
			break
		}
		b.WriteString(raw[:i])
		raw = raw[i:]
		end := strings.IndexByte(raw, ';')
		if end < 0 || end > 32 {
			return "", p.errf("malformed entity reference")
		}
		name := raw[1:end]
		switch {
		case name == "amp":
			b.WriteByte('&')
		case name == "lt":
			b.WriteByte('<')
		case name == "gt":
			b.WriteByte('>')
		case name == "apos":
			b.WriteByte('\'')
		case name == "quot":
			b.WriteByte('"')
		case strings.HasPrefix(name, "#"):
			r, err := decodeCharRef(name[1:])
			if err != nil {
				return "", p.errf("malformed character reference &%s;", name)
			}
			b.WriteRune(r)
		default:
			return "", p.errf("unknown entity &%s;", name)
		}
		raw = raw[end+1:]
	}
	return b.String(), nil
}

func decodeCharRef(s string) (rune, error) {
	base := 10
	if strings.HasPrefix(s, "x") || strings.HasPrefix(s, "X") {
		s = s[1:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isNameStart(c byte) bool {
	return c == '_' || c == ':' ||
		c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

func isNameByte(c byte) bool {
	return isNameStart(c) || c == '-' || c == '.' || c >= '0' && c <= '9'
}
