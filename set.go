package dlmatch

import (
	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/pattern"
)

type candidate struct {
	index    int
	bindings Bindings
}

// matchSet assigns every item of p to a distinct element of target.
// Without an ellipsis the assignment must use every element. The
// first assignment found, in item order and then element order, wins.
func (m *matcher) matchSet(target any, p *pattern.Set) (Bindings, bool, error) {
	elems, ok := target.(dl.Set)
	if !ok {
		return nil, false, nil
	}
	n := len(p.Items)
	if n > len(elems) || (!p.Ellipsis && n != len(elems)) {
		return nil, false, nil
	}
	rows := make([][]candidate, n)
	for i, item := range p.Items {
		for j, elem := range elems {
			b, ok, err := m.match(elem, item)
			if err != nil {
				return nil, false, err
			}
			if ok {
				rows[i] = append(rows[i], candidate{index: j, bindings: b})
			}
		}
		if len(rows[i]) == 0 {
			if debug.Set() {
				debug.Logf("set item %d %s has no candidates in %s\n", i, item.String(), elems)
			}
			return nil, false, nil
		}
	}
	res, ok, err := m.assign(rows, 0, nil, Bindings{})
	if debug.Set() {
		debug.Logf("set %s against %s: %v %v\n", p.String(), elems, ok, res)
	}
	return res, ok, err
}

// assign extends an assignment of rows[:row], which consumed the
// element indices in used and produced acc. A candidate whose bindings
// conflict with acc is skipped like a consumed one.
func (m *matcher) assign(rows [][]candidate, row int, used indexSet, acc Bindings) (Bindings, bool, error) {
	if row == len(rows) {
		return acc, true, nil
	}
	if err := m.tick(); err != nil {
		return nil, false, err
	}
	for _, c := range rows[row] {
		if used.has(c.index) {
			continue
		}
		merged, ok := Merge(acc, c.bindings)
		if !ok {
			continue
		}
		res, ok, err := m.assign(rows, row+1, used.with(c.index), merged)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return res, true, nil
		}
	}
	return nil, false, nil
}

// indexSet is an immutable bit set of element indices.
type indexSet []uint64

func (s indexSet) has(i int) bool {
	w := i / 64
	return w < len(s) && s[w]&(uint64(1)<<uint(i%64)) != 0
}

func (s indexSet) with(i int) indexSet {
	w := i / 64
	res := make(indexSet, max(len(s), w+1))
	copy(res, s)
	res[w] |= uint64(1) << uint(i%64)
	return res
}
