// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package comm implements communicators and communication patterns for distributed linear systems
package comm

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
)

// Communicator defines the collective operations needed by distributed matrices and vectors.
// All processors in a communicator must call collective operations in the same order.
type Communicator interface {
	Rank() int                   // this processor number
	Size() int                   // number of processors
	AllReduceSum(x, w []float64) // x := Σ x over all processors; w is a workspace with len(w) == len(x)
}

// Serial implements Communicator for runs with a single processor
type Serial struct{}

// Rank returns 0
func (o Serial) Rank() int { return 0 }

// Size returns 1
func (o Serial) Size() int { return 1 }

// AllReduceSum does nothing since x already holds the sum
func (o Serial) AllReduceSum(x, w []float64) {}

// Mpi implements Communicator using a gosl MPI communicator
type Mpi struct {
	c *mpi.Communicator
}

// NewMpi returns the MPI world communicator; MPI must be on
func NewMpi() *Mpi {
	if !mpi.IsOn() {
		chk.Panic("NewMpi: MPI must be started first")
	}
	return &Mpi{c: mpi.NewCommunicator(nil)}
}

// Rank returns the MPI rank of this processor
func (o *Mpi) Rank() int { return o.c.Rank() }

// Size returns the number of MPI processors
func (o *Mpi) Size() int { return o.c.Size() }

// AllReduceSum sums x over all processors
func (o *Mpi) AllReduceSum(x, w []float64) {
	if len(x) != len(w) {
		chk.Panic("AllReduceSum: workspace must have the same length as x. %d != %d", len(w), len(x))
	}
	if len(x) == 0 || o.c.Size() < 2 {
		return
	}
	copy(w, x)
	o.c.AllReduceSum(x, w)
}

// Raw returns the underlying gosl communicator; e.g. for distributed solvers
func (o *Mpi) Raw() *mpi.Communicator { return o.c }

// GetCommunicator returns the MPI communicator if MPI is on and parallel runs are allowed;
// otherwise it returns a serial communicator
func GetCommunicator(allowParallel bool) Communicator {
	if mpi.IsOn() && allowParallel {
		return NewMpi()
	}
	return Serial{}
}

// SumInts sums integers over all processors
func SumInts(cc Communicator, vals ...int) (sums []int) {
	x := make([]float64, len(vals))
	w := make([]float64, len(vals))
	for i, v := range vals {
		x[i] = float64(v)
	}
	cc.AllReduceSum(x, w)
	sums = make([]int, len(vals))
	for i, v := range x {
		sums[i] = int(v)
	}
	return
}

// in-process group ///////////////////////////////////////////////////////////////////////////////

// NewGroup returns n communicators sharing an in-process reduction point.
// Each member must be driven by its own goroutine; e.g. to run distributed
// assemblies without MPI.
func NewGroup(n int) (members []Communicator) {
	if n < 1 {
		chk.Panic("NewGroup: number of members must be at least 1. n=%d is invalid", n)
	}
	g := &group{size: n}
	g.cond = sync.NewCond(&g.mu)
	members = make([]Communicator, n)
	for i := 0; i < n; i++ {
		members[i] = &Member{rank: i, g: g}
	}
	return
}

// Member is one communicator of an in-process group
type Member struct {
	rank int
	g    *group
}

// Rank returns the position of this member in the group
func (o *Member) Rank() int { return o.rank }

// Size returns the number of members in the group
func (o *Member) Size() int { return o.g.size }

// AllReduceSum sums x over all members; it blocks until all members have called it
func (o *Member) AllReduceSum(x, w []float64) {
	if len(x) != len(w) {
		chk.Panic("AllReduceSum: workspace must have the same length as x. %d != %d", len(w), len(x))
	}
	o.g.reduce(x)
}

// group holds the shared state of in-process members
type group struct {
	size    int
	mu      sync.Mutex
	cond    *sync.Cond
	gen     int       // generation; incremented when a reduction completes
	arrived int       // members that contributed to the current reduction
	acc     []float64 // accumulator of the current reduction
	res     []float64 // result of the last completed reduction
}

func (o *group) reduce(x []float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	gen := o.gen
	if o.arrived == 0 {
		o.acc = make([]float64, len(x))
	}
	if len(o.acc) != len(x) {
		chk.Panic("AllReduceSum: members called the reduction with different lengths. %d != %d", len(x), len(o.acc))
	}
	for i, v := range x {
		o.acc[i] += v
	}
	o.arrived++
	if o.arrived == o.size {
		o.res, o.acc = o.acc, nil
		o.arrived = 0
		o.gen++
		o.cond.Broadcast()
	} else {
		for gen == o.gen {
			o.cond.Wait()
		}
	}
	copy(x, o.res)
}
