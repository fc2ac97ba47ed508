// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comm

import "github.com/cpmech/gosl/chk"

// Pattern holds the communication pattern of one processor: for each process-local index,
// the global id and whether the entry is updatable (owned) or a ghost (read-only mirror of
// an entry owned by another processor)
type Pattern struct {
	Gids      []int  // [nlocal] global ids
	Updatable []bool // [nlocal] owned by this processor
}

// NewPattern returns a new communication pattern
func NewPattern(gids []int, updatable []bool) (o *Pattern, err error) {
	o = &Pattern{Gids: gids, Updatable: updatable}
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// PatternFromOwners builds the communication pattern of processor rank given the owner
// (processor number) of each process-local entry
func PatternFromOwners(gids, owners []int, rank int) (o *Pattern, err error) {
	if len(gids) != len(owners) {
		return nil, chk.Err("number of owners must be equal to number of global ids. %d != %d", len(owners), len(gids))
	}
	updatable := make([]bool, len(gids))
	for i, p := range owners {
		updatable[i] = p == rank
	}
	return NewPattern(gids, updatable)
}

// Size returns the number of process-local entries (owned + ghosts)
func (o *Pattern) Size() int {
	return len(o.Gids)
}

// NumUpdatable returns the number of owned entries
func (o *Pattern) NumUpdatable() (n int) {
	for _, upd := range o.Updatable {
		if upd {
			n++
		}
	}
	return
}

// Validate checks the consistency of this pattern
func (o *Pattern) Validate() error {
	if len(o.Gids) != len(o.Updatable) {
		return chk.Err("number of ownership flags must be equal to number of global ids. %d != %d", len(o.Updatable), len(o.Gids))
	}
	seen := make(map[int]int, len(o.Gids))
	for i, gid := range o.Gids {
		if gid < 0 {
			return chk.Err("global id of local entry %d is negative (%d)", i, gid)
		}
		if j, found := seen[gid]; found {
			return chk.Err("global id %d is repeated at local entries %d and %d", gid, j, i)
		}
		seen[gid] = i
	}
	return nil
}
