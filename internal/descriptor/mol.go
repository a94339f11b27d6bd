package descriptor

import (
	"fmt"
	"math"
)

type atom struct {
	el        string
	aromatic  bool
	bracket   bool
	isotope   int
	charge    int
	bracketH  int
	implicitH int
}

type bond struct {
	a, b    int
	order   float64
	closure bool
	ring    bool
}

// mol is the parsed molecular graph. rings holds one atom cycle per ring
// closure, found as the shortest cycle through each closure bond.
type mol struct {
	atoms    []atom
	bonds    []bond
	adj      [][]int
	rings    [][]int
	ringAtom []bool
}

func (m *mol) addBond(a, b int, order float64, closure bool) {
	m.bonds = append(m.bonds, bond{a: a, b: b, order: order, closure: closure})
}

func (m *mol) bondBetween(a, b int) int {
	for bi, bd := range m.bonds {
		if (bd.a == a && bd.b == b) || (bd.a == b && bd.b == a) {
			return bi
		}
	}
	return -1
}

// finalize builds adjacency, perceives rings, and validates aromaticity and
// valence. Called once after parsing.
func (m *mol) finalize() error {
	m.adj = make([][]int, len(m.atoms))
	for bi, b := range m.bonds {
		m.adj[b.a] = append(m.adj[b.a], bi)
		m.adj[b.b] = append(m.adj[b.b], bi)
	}
	m.findRings()
	for i, a := range m.atoms {
		if a.aromatic && !m.ringAtom[i] {
			return fmt.Errorf("aromatic atom %q outside a ring", a.el)
		}
	}
	return m.assignHydrogens()
}

func (m *mol) findRings() {
	m.ringAtom = make([]bool, len(m.atoms))
	for bi := range m.bonds {
		if !m.bonds[bi].closure {
			continue
		}
		cycle := m.shortestPath(m.bonds[bi].b, m.bonds[bi].a, bi)
		if cycle == nil {
			continue
		}
		m.rings = append(m.rings, cycle)
		m.bonds[bi].ring = true
		for _, ai := range cycle {
			m.ringAtom[ai] = true
		}
		for k := 0; k+1 < len(cycle); k++ {
			if idx := m.bondBetween(cycle[k], cycle[k+1]); idx >= 0 {
				m.bonds[idx].ring = true
			}
		}
	}
}

// shortestPath runs a BFS from one atom to another while ignoring the bond
// at index skip, returning the atom path including both endpoints.
func (m *mol) shortestPath(from, to, skip int) []int {
	prev := make([]int, len(m.atoms))
	for i := range prev {
		prev[i] = -2
	}
	prev[from] = -1
	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			break
		}
		for _, bi := range m.adj[cur] {
			if bi == skip {
				continue
			}
			next := m.bonds[bi].a
			if next == cur {
				next = m.bonds[bi].b
			}
			if prev[next] != -2 {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	if prev[to] == -2 {
		return nil
	}
	var path []int
	for cur := to; cur != -1; cur = prev[cur] {
		path = append(path, cur)
	}
	return path
}

func (m *mol) assignHydrogens() error {
	for i := range m.atoms {
		a := &m.atoms[i]
		el, ok := elements[a.el]
		if !ok {
			return fmt.Errorf("unknown element %q", a.el)
		}
		sum := 0.0
		for _, bi := range m.adj[i] {
			order := m.bonds[bi].order
			if a.aromatic && order == 1.5 {
				// Aromatic bonds count once toward the sigma frame so
				// that ring fusions and heteroaromatics stay within
				// valence.
				order = 1
			}
			sum += order
		}
		needed := int(math.Ceil(sum - 1e-9))
		if a.bracket {
			// Bracket atoms carry exactly their written hydrogen count.
			a.implicitH = a.bracketH
			if allowed := adjustedMax(el, a.charge); needed+a.bracketH > allowed {
				return fmt.Errorf("atom %q charge %+d exceeds valence %d", a.el, a.charge, allowed)
			}
			continue
		}
		h := -1
		for _, v := range el.valences {
			if v >= needed {
				h = v - needed
				break
			}
		}
		if h < 0 {
			return fmt.Errorf("atom %q with bond order sum %.1f exceeds valence", a.el, sum)
		}
		if a.aromatic && h > 0 {
			// One slot belongs to the delocalized ring system.
			h--
		}
		a.implicitH = h
	}
	return nil
}

// adjustedMax is the maximum valence for a charged atom; cations gain and
// anions lose bonding capacity relative to the highest standard valence.
func adjustedMax(el element, charge int) int {
	allowed := el.valences[len(el.valences)-1] + charge
	if allowed < 0 {
		return 0
	}
	return allowed
}

func (m *mol) heavyCount() int {
	n := 0
	for _, a := range m.atoms {
		if a.el != "H" {
			n++
		}
	}
	return n
}

func (m *mol) heavyDegree(i int) int {
	n := 0
	for _, bi := range m.adj[i] {
		next := m.bonds[bi].a
		if next == i {
			next = m.bonds[bi].b
		}
		if m.atoms[next].el != "H" {
			n++
		}
	}
	return n
}

func (m *mol) heavyBondCount() int {
	n := 0
	for _, b := range m.bonds {
		if m.atoms[b.a].el != "H" && m.atoms[b.b].el != "H" {
			n++
		}
	}
	return n
}
