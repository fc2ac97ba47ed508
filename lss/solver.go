// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"time"

	"github.com/cpmech/golss/comm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
	"gonum.org/v1/gonum/mat"
)

// Solver defines external linear solvers
//  Init receives a created matrix; Solve receives vectors in global numbering (gid*neq + eq)
//  with the complete right-hand side on all processors.
type Solver interface {
	Init(A *Matrix) (err error)
	Solve(x, b []float64) (err error)
	Free()
}

// SolverArgs holds arguments for linear solvers
type SolverArgs struct {
	Symmetric bool // matrix is symmetric
	Verbose   bool // show messages
	Timing    bool // show timing
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(args *SolverArgs) Solver)

// GetSolver returns a new linear solver
func GetSolver(name string, args *SolverArgs) (s Solver, err error) {
	if args == nil {
		args = new(SolverArgs)
	}
	if alloc, ok := solverallocators[name]; ok {
		return alloc(args), nil
	}
	return nil, chk.Err("cannot find linear solver named %q", name)
}

// Solve solves A·x = b using an external solver. x and b must be created with the same
// communication pattern as A. On exit, owned and ghost entries of x hold the solution.
// This is collective.
func (o *Matrix) Solve(s Solver, x, b *Vector) (err error) {

	// check
	o.checkCreated("Solve")
	x.checkCreated("Solve")
	b.checkCreated("Solve")
	if x.neq != o.neq || b.neq != o.neq || len(x.vals) != o.nbcols*o.neq || len(b.vals) != o.nbcols*o.neq {
		chk.Panic("Solve: vectors are incompatible with matrix %q", o.Name)
	}

	// right-hand side in global numbering
	bg := b.Gather(o.nglobal)
	xg := make([]float64, len(bg))

	// solve
	err = s.Init(o)
	if err != nil {
		return chk.Err("cannot initialise linear solver:\n%v", err)
	}
	defer s.Free()
	err = s.Solve(xg, bg)
	if err != nil {
		return chk.Err("linear solver failed:\n%v", err)
	}

	// the solution of root is sent to everyone
	if o.cc.Size() > 1 {
		if o.cc.Rank() != 0 {
			la.Vector(xg).Fill(0)
		}
		o.cc.AllReduceSum(xg, make([]float64, len(xg)))
	}
	x.Scatter(xg)
	return
}

// register solvers
func init() {
	solverallocators["umfpack"] = func(args *SolverArgs) Solver { return &GoslSolver{Name: "umfpack", Args: *args} }
	solverallocators["mumps"] = func(args *SolverArgs) Solver { return &GoslSolver{Name: "mumps", Args: *args} }
	solverallocators["dense"] = func(args *SolverArgs) Solver { return new(DenseSolver) }
}

// GoslSolver wraps the sparse solvers of gosl/la
type GoslSolver struct {
	Name string          // "umfpack" or "mumps"
	Args SolverArgs      // arguments
	lis  la.SparseSolver // linear solver
	t    la.Triplet      // part of global matrix held by this processor
	tini time.Time       // time when Init was called
}

// Init initialises and factorises the sparse solver
func (o *GoslSolver) Init(A *Matrix) (err error) {
	defer catch(&err)
	o.tini = time.Now()
	var raw *mpi.Communicator
	if c, ok := A.Comm().(*comm.Mpi); ok {
		raw = c.Raw()
	}
	switch {
	case o.Name == "mumps" && raw == nil:
		return chk.Err("mumps requires an MPI communicator")
	case o.Name == "umfpack" && A.Comm().Size() > 1:
		return chk.Err("umfpack cannot solve a matrix distributed over %d processors", A.Comm().Size())
	}
	A.ToTriplet(&o.t)
	o.lis = la.NewSparseSolver(o.Name)
	o.lis.Init(&o.t, o.Args.Symmetric, o.Args.Verbose, "", "", raw)
	o.lis.Fact()
	if o.Args.Timing {
		io.Pfcyan("%s: initialisation and factorisation = %v\n", o.Name, time.Now().Sub(o.tini))
	}
	return
}

// Solve solves the factorised system
func (o *GoslSolver) Solve(x, b []float64) (err error) {
	defer catch(&err)
	o.lis.Solve(x, b, false)
	if o.Args.Timing {
		io.Pfcyan("%s: total time = %v\n", o.Name, time.Now().Sub(o.tini))
	}
	return
}

// Free releases the solver
func (o *GoslSolver) Free() {
	if o.lis != nil {
		o.lis.Free()
	}
}

// catch converts panics of the gosl solvers into errors
func catch(err *error) {
	if r := recover(); r != nil {
		*err = chk.Err("%v", r)
	}
}

// DenseSolver gathers the global matrix on every processor and solves it with a dense LU
// decomposition. Use it for small systems and checks.
type DenseSolver struct {
	lu mat.LU
	n  int
}

// Init gathers and factorises the matrix
func (o *DenseSolver) Init(A *Matrix) (err error) {
	o.n = A.nglobal * A.neq
	if o.n == 0 {
		return chk.Err("cannot factorise empty matrix %q", A.Name)
	}
	a := make([]float64, o.n*o.n)
	A.each(func(grow, gcol int, v float64) {
		a[grow*o.n+gcol] += v
	})
	A.cc.AllReduceSum(a, make([]float64, len(a)))
	o.lu.Factorize(mat.NewDense(o.n, o.n, a))
	return
}

// Solve solves the factorised system
func (o *DenseSolver) Solve(x, b []float64) (err error) {
	if len(x) != o.n || len(b) != o.n {
		return chk.Err("lengths of vectors must be equal to %d. len(x)=%d and len(b)=%d", o.n, len(x), len(b))
	}
	err = o.lu.SolveVecTo(mat.NewVecDense(o.n, x), false, mat.NewVecDense(o.n, b))
	if err != nil {
		return chk.Err("matrix is singular or near singular:\n%v", err)
	}
	return
}

// Free does nothing
func (o *DenseSolver) Free() {}
