package descriptor

import (
	"errors"
	"math"
)

// Descriptors returns the primary descriptor block in fixed order: molecular
// weight, logP estimate, hydrogen donors, hydrogen acceptors, polar surface
// area, rotatable bonds, aromatic rings, saturated rings, aliphatic rings,
// ring count, heteroatoms and a complexity index.
func (m *mol) Descriptors() ([]float64, error) {
	if len(m.atoms) == 0 {
		return nil, errors.New("empty molecule")
	}
	return []float64{
		m.molWeight(),
		m.logP(),
		float64(m.hDonors()),
		float64(m.hAcceptors()),
		m.tpsa(),
		float64(m.rotatableBonds()),
		float64(m.aromaticRings()),
		float64(m.saturatedRings()),
		float64(m.aliphaticRings()),
		float64(len(m.rings)),
		float64(m.heteroatoms()),
		m.complexity(),
	}, nil
}

// ShapeDescriptors returns the kappa shape indices, the sp3 carbon fraction
// and the Balaban connectivity index. Molecules with fewer than two heavy
// atoms have no meaningful shape.
func (m *mol) ShapeDescriptors() ([]float64, error) {
	if m.heavyCount() < 2 {
		return nil, errors.New("too few heavy atoms for shape descriptors")
	}
	return []float64{
		m.kappa1(),
		m.kappa2(),
		m.kappa3(),
		m.fractionCsp3(),
		m.balabanJ(),
	}, nil
}

func (m *mol) molWeight() float64 {
	total := 0.0
	for _, a := range m.atoms {
		total += elements[a.el].mass
		total += float64(a.implicitH) * hydrogenMass
	}
	return total
}

// logP is an additive per-atom estimate in the spirit of fragment methods.
func (m *mol) logP() float64 {
	total := 0.0
	for _, a := range m.atoms {
		switch a.el {
		case "C":
			if a.aromatic {
				total += 0.29
			} else {
				total += 0.14
			}
		case "N":
			total -= 0.60
		case "O":
			total -= 0.64
		case "S":
			total += 0.25
		case "P":
			total -= 0.45
		case "F":
			total += 0.22
		case "Cl":
			total += 0.65
		case "Br":
			total += 0.86
		case "I":
			total += 1.12
		case "H":
			total += 0.11
		default:
			total -= 0.08
		}
		total += 0.11 * float64(a.implicitH)
	}
	return total
}

func (m *mol) hDonors() int {
	n := 0
	for _, a := range m.atoms {
		if (a.el == "N" || a.el == "O") && a.implicitH > 0 {
			n++
		}
	}
	return n
}

func (m *mol) hAcceptors() int {
	n := 0
	for _, a := range m.atoms {
		if a.el == "N" || a.el == "O" {
			n++
		}
	}
	return n
}

// tpsa sums topological polar surface area contributions for N, O, S and P
// using environment-dependent values.
func (m *mol) tpsa() float64 {
	total := 0.0
	for i, a := range m.atoms {
		switch a.el {
		case "O":
			switch {
			case a.aromatic:
				total += 13.14
			case a.implicitH > 0:
				total += 20.23
			case m.hasBondOfOrder(i, 2):
				total += 17.07
			default:
				total += 9.23
			}
		case "N":
			switch {
			case a.aromatic && a.implicitH > 0:
				total += 15.79
			case a.aromatic:
				total += 12.89
			case a.implicitH >= 2:
				total += 26.02
			case a.implicitH == 1:
				total += 12.03
			default:
				total += 3.24
			}
		case "S":
			if a.aromatic {
				total += 28.24
			} else {
				total += 25.30
			}
		case "P":
			total += 13.59
		}
	}
	return total
}

func (m *mol) hasBondOfOrder(i int, order float64) bool {
	for _, bi := range m.adj[i] {
		if m.bonds[bi].order == order {
			return true
		}
	}
	return false
}

// rotatableBonds counts acyclic single bonds between two non-terminal heavy
// atoms.
func (m *mol) rotatableBonds() int {
	n := 0
	for _, b := range m.bonds {
		if b.order != 1 || b.ring {
			continue
		}
		if m.heavyDegree(b.a) >= 2 && m.heavyDegree(b.b) >= 2 {
			n++
		}
	}
	return n
}

func (m *mol) aromaticRings() int {
	n := 0
	for _, ring := range m.rings {
		all := true
		for _, ai := range ring {
			if !m.atoms[ai].aromatic {
				all = false
				break
			}
		}
		if all {
			n++
		}
	}
	return n
}

func (m *mol) saturatedRings() int {
	n := 0
	for _, ring := range m.rings {
		saturated := true
		for _, bi := range m.cycleBonds(ring) {
			if m.bonds[bi].order != 1 {
				saturated = false
				break
			}
		}
		if saturated {
			n++
		}
	}
	return n
}

func (m *mol) aliphaticRings() int {
	return len(m.rings) - m.aromaticRings()
}

// cycleBonds returns the bond indexes around a ring cycle, including the
// bond that closes it.
func (m *mol) cycleBonds(ring []int) []int {
	out := make([]int, 0, len(ring))
	for k := range ring {
		x, y := ring[k], ring[(k+1)%len(ring)]
		if bi := m.bondBetween(x, y); bi >= 0 {
			out = append(out, bi)
		}
	}
	return out
}

func (m *mol) heteroatoms() int {
	n := 0
	for _, a := range m.atoms {
		if a.el != "C" && a.el != "H" {
			n++
		}
	}
	return n
}

// complexity is a graph-complexity index growing with branching, bond
// multiplicity, rings and heteroatom content.
func (m *mol) complexity() float64 {
	total := 0.0
	for i := range m.atoms {
		if d := float64(len(m.adj[i])); d > 0 {
			total += d * math.Log2(d+1)
		}
	}
	for _, b := range m.bonds {
		total += (b.order - 1) * 2
	}
	total += float64(len(m.rings)) * 6
	total += float64(m.heteroatoms()) * 1.5
	return total
}

func (m *mol) kappa1() float64 {
	a := float64(m.heavyCount())
	p1 := float64(m.heavyBondCount())
	if p1 == 0 {
		return 0
	}
	return a * (a - 1) * (a - 1) / (p1 * p1)
}

func (m *mol) kappa2() float64 {
	a := float64(m.heavyCount())
	p2 := float64(m.pathCount2())
	if p2 == 0 {
		return 0
	}
	return (a - 1) * (a - 2) * (a - 2) / (p2 * p2)
}

func (m *mol) kappa3() float64 {
	a := m.heavyCount()
	p3 := float64(m.pathCount3())
	if p3 == 0 {
		return 0
	}
	var num float64
	if a%2 == 1 {
		num = float64(a-1) * float64(a-3) * float64(a-3)
	} else {
		num = float64(a-3) * float64(a-2) * float64(a-2)
	}
	if num < 0 {
		return 0
	}
	return num / (p3 * p3)
}

// pathCount2 counts paths of length two between heavy atoms.
func (m *mol) pathCount2() int {
	n := 0
	for i := range m.atoms {
		if m.atoms[i].el == "H" {
			continue
		}
		d := m.heavyDegree(i)
		n += d * (d - 1) / 2
	}
	return n
}

// pathCount3 approximates paths of length three between heavy atoms.
func (m *mol) pathCount3() int {
	n := 0
	for _, b := range m.bonds {
		if m.atoms[b.a].el == "H" || m.atoms[b.b].el == "H" {
			continue
		}
		n += (m.heavyDegree(b.a) - 1) * (m.heavyDegree(b.b) - 1)
	}
	return n
}

func (m *mol) fractionCsp3() float64 {
	carbons, sp3 := 0, 0
	for i, a := range m.atoms {
		if a.el != "C" {
			continue
		}
		carbons++
		if a.aromatic {
			continue
		}
		single := true
		for _, bi := range m.adj[i] {
			if m.bonds[bi].order != 1 {
				single = false
				break
			}
		}
		if single {
			sp3++
		}
	}
	if carbons == 0 {
		return 0
	}
	return float64(sp3) / float64(carbons)
}

// balabanJ computes the Balaban connectivity index over the whole graph.
// Pairs in different components are skipped.
func (m *mol) balabanJ() float64 {
	if len(m.bonds) == 0 {
		return 0
	}
	dist := m.allPairsDistances()
	sums := make([]float64, len(m.atoms))
	for i := range m.atoms {
		for j := range m.atoms {
			if d := dist[i][j]; d > 0 {
				sums[i] += float64(d)
			}
		}
	}
	mu := len(m.bonds) - len(m.atoms) + m.componentCount()
	j := float64(len(m.bonds)) / float64(mu+1)
	total := 0.0
	for _, b := range m.bonds {
		if sums[b.a] > 0 && sums[b.b] > 0 {
			total += 1 / math.Sqrt(sums[b.a]*sums[b.b])
		}
	}
	return j * total
}

func (m *mol) allPairsDistances() [][]int {
	dist := make([][]int, len(m.atoms))
	for from := range m.atoms {
		row := make([]int, len(m.atoms))
		for i := range row {
			row[i] = -1
		}
		row[from] = 0
		queue := []int{from}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, bi := range m.adj[cur] {
				next := m.bonds[bi].a
				if next == cur {
					next = m.bonds[bi].b
				}
				if row[next] >= 0 {
					continue
				}
				row[next] = row[cur] + 1
				queue = append(queue, next)
			}
		}
		dist[from] = row
	}
	return dist
}

func (m *mol) componentCount() int {
	seen := make([]bool, len(m.atoms))
	count := 0
	for start := range m.atoms {
		if seen[start] {
			continue
		}
		count++
		queue := []int{start}
		seen[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, bi := range m.adj[cur] {
				next := m.bonds[bi].a
				if next == cur {
					next = m.bonds[bi].b
				}
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	return count
}
