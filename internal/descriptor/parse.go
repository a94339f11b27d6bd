package descriptor

import (
	"fmt"
)

// bondOrderFor maps a bond symbol to its numeric order. Directional bonds
// count as single; ':' is the explicit aromatic bond.
func bondOrderFor(sym byte) float64 {
	switch sym {
	case '=':
		return 2
	case '#':
		return 3
	case ':':
		return 1.5
	default:
		return 1
	}
}

type ringRef struct {
	atom int
	sym  byte
}

type parser struct {
	input   string
	pos     int
	m       *mol
	prev    int
	stack   []int
	pending byte
	open    map[int]ringRef
}

// parseSMILES builds a molecular graph from a SMILES string. It accepts the
// organic subset plus bracket atoms and rejects anything it cannot prove to
// be well formed: unknown symbols, unclosed branches or rings, dangling
// bonds, aromatic atoms outside rings and overvalent atoms.
func parseSMILES(input string) (*mol, error) {
	if input == "" {
		return nil, fmt.Errorf("empty notation")
	}
	p := &parser{
		input: input,
		m:     &mol{},
		prev:  -1,
		open:  make(map[int]ringRef),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	if err := p.m.finalize(); err != nil {
		return nil, err
	}
	return p.m, nil
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("position %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) run() error {
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 {
				return p.errf("branch before any atom")
			}
			p.stack = append(p.stack, p.prev)
			p.pos++
		case c == ')':
			if len(p.stack) == 0 {
				return p.errf("unmatched closing branch")
			}
			if p.pending != 0 {
				return p.errf("dangling bond before closing branch")
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.pos++
		case c == '-' || c == '=' || c == '#' || c == ':' || c == '/' || c == '\\':
			if p.pending != 0 {
				return p.errf("consecutive bond symbols")
			}
			p.pending = c
			p.pos++
		case c == '.':
			if p.pending != 0 {
				return p.errf("bond before dot separator")
			}
			p.prev = -1
			p.pos++
		case c >= '0' && c <= '9':
			if err := p.ringBond(int(c - '0')); err != nil {
				return err
			}
			p.pos++
		case c == '%':
			if p.pos+2 >= len(p.input) || !isDigit(p.input[p.pos+1]) || !isDigit(p.input[p.pos+2]) {
				return p.errf("%% must be followed by two digits")
			}
			n := int(p.input[p.pos+1]-'0')*10 + int(p.input[p.pos+2]-'0')
			if err := p.ringBond(n); err != nil {
				return err
			}
			p.pos += 3
		case c == '[':
			a, err := p.parseBracketAtom()
			if err != nil {
				return err
			}
			if err := p.addAtom(a); err != nil {
				return err
			}
		default:
			a, err := p.parseOrganicAtom()
			if err != nil {
				return err
			}
			if err := p.addAtom(a); err != nil {
				return err
			}
		}
	}
	if len(p.stack) != 0 {
		return p.errf("unclosed branch")
	}
	if len(p.open) != 0 {
		return p.errf("unclosed ring bond")
	}
	if p.pending != 0 {
		return p.errf("dangling bond at end of input")
	}
	if len(p.m.atoms) == 0 {
		return p.errf("no atoms")
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

// addAtom appends the atom and bonds it to the previous one unless a dot or
// the start of input preceded it.
func (p *parser) addAtom(a atom) error {
	idx := len(p.m.atoms)
	p.m.atoms = append(p.m.atoms, a)
	if p.prev < 0 {
		if p.pending != 0 {
			return p.errf("bond with no preceding atom")
		}
		p.prev = idx
		return nil
	}
	p.m.addBond(p.prev, idx, p.bondSpec(p.prev, idx, p.pending), false)
	p.pending = 0
	p.prev = idx
	return nil
}

// bondSpec resolves an explicit bond symbol, defaulting to aromatic when
// both ends are aromatic atoms and to single otherwise.
func (p *parser) bondSpec(a, b int, sym byte) float64 {
	if sym != 0 {
		return bondOrderFor(sym)
	}
	if p.m.atoms[a].aromatic && p.m.atoms[b].aromatic {
		return 1.5
	}
	return 1
}

// ringBond opens a numbered ring bond on first sight and closes it on the
// second.
func (p *parser) ringBond(n int) error {
	if p.prev < 0 {
		return p.errf("ring bond before any atom")
	}
	ref, ok := p.open[n]
	if !ok {
		p.open[n] = ringRef{atom: p.prev, sym: p.pending}
		p.pending = 0
		return nil
	}
	delete(p.open, n)
	if ref.atom == p.prev {
		return p.errf("ring bond %d closes on its own atom", n)
	}
	sym := ref.sym
	if p.pending != 0 {
		if sym != 0 && sym != p.pending {
			return p.errf("conflicting bond symbols on ring bond %d", n)
		}
		sym = p.pending
		p.pending = 0
	}
	if p.m.bondBetween(ref.atom, p.prev) >= 0 {
		return p.errf("duplicate bond on ring closure %d", n)
	}
	p.m.addBond(ref.atom, p.prev, p.bondSpec(ref.atom, p.prev, sym), true)
	return nil
}

// parseOrganicAtom reads a bare atom symbol from the organic subset.
func (p *parser) parseOrganicAtom() (atom, error) {
	c := p.input[p.pos]
	switch {
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		p.pos++
		if (c == 'C' && p.peek() == 'l') || (c == 'B' && p.peek() == 'r') {
			sym += string(p.peek())
			p.pos++
		}
		if !organicSubset[sym] {
			return atom{}, p.errf("element %q must be written in brackets", sym)
		}
		return atom{el: sym}, nil
	case c >= 'a' && c <= 'z':
		el, ok := aromaticSubset[c]
		if !ok {
			return atom{}, p.errf("unexpected character %q", c)
		}
		p.pos++
		return atom{el: el, aromatic: true}, nil
	default:
		return atom{}, p.errf("unexpected character %q", c)
	}
}

// parseBracketAtom reads one [..] atom: isotope, symbol, chirality,
// hydrogen count, charge and atom class.
func (p *parser) parseBracketAtom() (atom, error) {
	p.pos++ // consume [
	a := atom{bracket: true}

	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		a.isotope = a.isotope*10 + int(p.input[p.pos]-'0')
		p.pos++
	}

	c := p.peek()
	switch {
	case c == 's' && p.pos+1 < len(p.input) && p.input[p.pos+1] == 'e':
		a.el, a.aromatic = "Se", true
		p.pos += 2
	case c == 'a' && p.pos+1 < len(p.input) && p.input[p.pos+1] == 's':
		a.el, a.aromatic = "As", true
		p.pos += 2
	case c >= 'a' && c <= 'z':
		el, ok := aromaticSubset[c]
		if !ok {
			return a, p.errf("unknown aromatic symbol %q", c)
		}
		a.el, a.aromatic = el, true
		p.pos++
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		p.pos++
		if n := p.peek(); n >= 'a' && n <= 'z' {
			if _, ok := elements[sym+string(n)]; ok {
				sym += string(n)
				p.pos++
			}
		}
		a.el = sym
	default:
		return a, p.errf("expected element symbol in brackets")
	}
	if _, ok := elements[a.el]; !ok {
		return a, p.errf("unknown element %q", a.el)
	}

	for p.peek() == '@' {
		p.pos++
	}

	if p.peek() == 'H' {
		p.pos++
		a.bracketH = 1
		if isDigit(p.peek()) {
			a.bracketH = int(p.peek() - '0')
			p.pos++
		}
	}

	if c := p.peek(); c == '+' || c == '-' {
		sign := 1
		if c == '-' {
			sign = -1
		}
		p.pos++
		count := 1
		if isDigit(p.peek()) {
			count = int(p.peek() - '0')
			p.pos++
		} else {
			for p.peek() == c {
				count++
				p.pos++
			}
		}
		a.charge = sign * count
	}

	if p.peek() == ':' {
		p.pos++
		if !isDigit(p.peek()) {
			return a, p.errf("atom class expects digits")
		}
		for isDigit(p.peek()) {
			p.pos++
		}
	}

	if p.peek() != ']' {
		return a, p.errf("unterminated bracket atom")
	}
	p.pos++
	return a, nil
}
