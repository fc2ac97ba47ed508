// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import "github.com/cpmech/gosl/chk"

// IndexMap maps process-local indices (communication pattern numbering) to matrix indices.
// Owned entries occupy [0, Nowned) in pattern order; ghosts follow, also in pattern order.
type IndexMap struct {
	P2m    []int // [nlocal] process-local index => matrix index
	M2p    []int // [nlocal] matrix index => process-local index
	Nowned int   // number of owned (updatable) entries
}

// Build computes the maps from the ownership flags of a communication pattern
func (o *IndexMap) Build(updatable []bool) {
	n := len(updatable)
	o.P2m = make([]int, n)
	o.M2p = make([]int, n)
	o.Nowned = 0
	for _, upd := range updatable {
		if upd {
			o.Nowned++
		}
	}
	iowned, ighost := 0, o.Nowned
	for i, upd := range updatable {
		if upd {
			o.P2m[i] = iowned
			iowned++
		} else {
			o.P2m[i] = ighost
			ighost++
		}
		o.M2p[o.P2m[i]] = i
	}
}

// Size returns the number of process-local entries
func (o *IndexMap) Size() int {
	return len(o.P2m)
}

// ToMatrix converts a process-local index into a matrix index
func (o *IndexMap) ToMatrix(i int) int {
	if i < 0 || i >= len(o.P2m) {
		chk.Panic("process-local index %d is out of range [0, %d)", i, len(o.P2m))
	}
	return o.P2m[i]
}

// ToLocal converts a matrix index into a process-local index
func (o *IndexMap) ToLocal(m int) int {
	if m < 0 || m >= len(o.M2p) {
		chk.Panic("matrix index %d is out of range [0, %d)", m, len(o.M2p))
	}
	return o.M2p[m]
}

// IsOwned tells whether the process-local index i is owned by this processor
func (o *IndexMap) IsOwned(i int) bool {
	return o.ToMatrix(i) < o.Nowned
}

// Clear releases the maps
func (o *IndexMap) Clear() {
	o.P2m, o.M2p, o.Nowned = nil, nil, 0
}
