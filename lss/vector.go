// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"github.com/cpmech/golss/comm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Vector is a distributed vector with the same layout as the rows of a Matrix created with the
// same communication pattern and neq. Ghost entries are stored too; their values are not
// synchronised with their owners by Vector.
type Vector struct {
	Name    string            // name of this vector; e.g. "rhs"
	cc      comm.Communicator // communicator
	gid     []int             // [nlocal] global ids of process-local entries
	p2m     IndexMap          // process-local => vector indices
	neq     int               // number of equations per block
	vals    []float64         // [nlocal*neq] owned entries first
	created bool
}

// NewVector returns a new (not created) vector
func NewVector(name string) *Vector {
	return &Vector{Name: name}
}

// Create allocates a zero-valued vector
func (o *Vector) Create(cc comm.Communicator, cp *comm.Pattern, neq int) (err error) {
	if cc == nil || cp == nil {
		chk.Panic("communicator and communication pattern must not be nil")
	}
	if neq < 1 {
		chk.Panic("number of equations per block must be at least 1. neq=%d is invalid", neq)
	}
	err = cp.Validate()
	if err != nil {
		return chk.Err("invalid communication pattern:\n%v", err)
	}
	o.cc = cc
	o.neq = neq
	o.gid = make([]int, cp.Size())
	copy(o.gid, cp.Gids)
	o.p2m.Build(cp.Updatable)
	o.vals = make([]float64, cp.Size()*neq)
	o.created = true
	return
}

// Destroy releases storage; it can be called many times
func (o *Vector) Destroy() {
	o.cc, o.gid, o.vals = nil, nil, nil
	o.p2m.Clear()
	o.neq = 0
	o.created = false
}

// IsCreated tells whether Create was called (and Destroy was not called afterwards)
func (o *Vector) IsCreated() bool { return o.created }

// Neq returns the number of equations per block
func (o *Vector) Neq() int { return o.neq }

// Size returns the number of process-local scalar entries
func (o *Vector) Size() int { return len(o.vals) }

// NumOwned returns the number of owned scalar entries
func (o *Vector) NumOwned() int { return o.p2m.Nowned * o.neq }

// SetValue sets entry irow (process-local scalar index)
func (o *Vector) SetValue(irow int, value float64) {
	o.vals[o.index(irow)] = value
}

// AddValue adds value to entry irow
func (o *Vector) AddValue(irow int, value float64) {
	o.vals[o.index(irow)] += value
}

// GetValue returns entry irow
func (o *Vector) GetValue(irow int) float64 {
	return o.vals[o.index(irow)]
}

// Reset sets all entries to value
func (o *Vector) Reset(value float64) {
	o.checkCreated("Reset")
	la.Vector(o.vals).Fill(value)
}

// Data returns a copy of all entries in process-local numbering
func (o *Vector) Data() (values []float64) {
	o.checkCreated("Data")
	values = make([]float64, len(o.vals))
	for i := range values {
		values[i] = o.vals[o.index(i)]
	}
	return
}

// SetData sets all entries from values given in process-local numbering
func (o *Vector) SetData(values []float64) {
	o.checkCreated("SetData")
	if len(values) != len(o.vals) {
		chk.Panic("SetData: length of values must be equal to the size of vector. %d != %d", len(values), len(o.vals))
	}
	for i, v := range values {
		o.vals[o.index(i)] = v
	}
}

// Gather returns the vector in global numbering (gid*neq + eq) with the owned entries of all
// processors. This is collective.
func (o *Vector) Gather(nglobal int) (global []float64) {
	o.checkCreated("Gather")
	global = make([]float64, nglobal*o.neq)
	o.eachOwned(func(i, g int) { global[g] = o.vals[i] })
	o.cc.AllReduceSum(global, make([]float64, len(global)))
	return
}

// Scatter sets owned and ghost entries from a vector in global numbering
func (o *Vector) Scatter(global []float64) {
	o.checkCreated("Scatter")
	n := o.neq
	for i, g := range o.gid {
		if (g+1)*n > len(global) {
			chk.Panic("Scatter: global vector is too short. %d < %d", len(global), (g+1)*n)
		}
		v := o.p2m.P2m[i] * n
		copy(o.vals[v:v+n], global[g*n:(g+1)*n])
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func (o *Vector) checkCreated(method string) {
	if !o.created {
		chk.Panic("%s: vector %q must be created first", method, o.Name)
	}
}

// index converts a process-local scalar index to a position in vals
func (o *Vector) index(irow int) int {
	o.checkCreated("entry access")
	if irow < 0 || irow >= len(o.vals) {
		chk.Panic("scalar index %d is out of range [0, %d)", irow, len(o.vals))
	}
	return o.p2m.P2m[irow/o.neq]*o.neq + irow%o.neq
}

// eachOwned calls fcn with the position in vals and the global scalar index of owned entries
func (o *Vector) eachOwned(fcn func(i, g int)) {
	n := o.neq
	for m := 0; m < o.p2m.Nowned; m++ {
		g := o.gid[o.p2m.M2p[m]] * n
		for r := 0; r < n; r++ {
			fcn(m*n+r, g+r)
		}
	}
}
