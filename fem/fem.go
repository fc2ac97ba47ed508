// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem assembles and solves distributed linear systems described by (.sys) files
package fem

import (
	"time"

	"github.com/cpmech/golss/comm"
	"github.com/cpmech/golss/inp"
	"github.com/cpmech/golss/lss"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// Main holds all data for assembling and solving one linear system
type Main struct {
	Sys     *inp.System       // system data
	Graph   *inp.Graph        // graph of this processor
	Pattern *comm.Pattern     // communication pattern of this processor
	Cc      comm.Communicator // communicator
	A       *lss.Matrix       // system matrix
	X       *lss.Vector       // solution
	B       *lss.Vector       // right-hand side
	Summary *Summary          // summary structure
	Proc    int               // processor id
	Nproc   int               // number of processors
	ShowMsg bool              // show messages
}

// NewMain returns a new Main structure
//  Input:
//   sysfilepath   -- system (.sys) filename including full path
//   alias         -- word to be appended to system key; e.g. when running multiple solutions
//   erasePrev     -- erase previous results files
//   allowParallel -- allow parallel execution; otherwise, run in serial mode regardless whether MPI is on or not
//   verbose       -- show messages
func NewMain(sysfilepath, alias string, erasePrev, allowParallel, verbose bool) (o *Main) {

	// read input data
	sys, err := inp.ReadSys(sysfilepath, alias, erasePrev)
	if err != nil {
		chk.Panic("cannot read system input data:\n%v", err)
	}

	// communicator and linear solver name
	cc := comm.GetCommunicator(allowParallel)
	if sys.LinSol.Name != "dense" {
		if mpi.IsOn() && allowParallel && cc.Size() > 1 {
			sys.LinSol.Name = "mumps"
		} else {
			sys.LinSol.Name = "umfpack"
		}
	}

	// allocate structures
	o, err = NewMainComm(sys, cc, verbose)
	if err != nil {
		chk.Panic("cannot allocate structures:\n%v", err)
	}
	return
}

// NewMainComm returns a new Main structure for given system and communicator.
// In serial runs, all vertices are owned by processor 0 regardless of the partitions in sys.
func NewMainComm(sys *inp.System, cc comm.Communicator, verbose bool) (o *Main, err error) {

	// multiprocessing data
	o = &Main{Sys: sys, Cc: cc, Proc: cc.Rank(), Nproc: cc.Size()}
	o.ShowMsg = verbose && (o.Proc == 0)
	if o.Nproc == 1 {
		sys.Parts = make([]int, sys.Nverts)
		sys.Nparts = 1
	}
	if sys.Nparts > o.Nproc {
		return nil, chk.Err("system has %d partitions but there are only %d processors", sys.Nparts, o.Nproc)
	}

	// graph and communication pattern
	o.Graph, err = sys.Graph(o.Proc)
	if err != nil {
		return nil, err
	}
	o.Pattern, err = o.Graph.Pattern()
	if err != nil {
		return nil, err
	}

	// matrix, vectors and summary
	o.A = lss.NewMatrix("system_matrix")
	o.X = lss.NewVector("x")
	o.B = lss.NewVector("b")
	o.Summary = new(Summary)
	return
}

// Run assembles and solves the linear system and saves results
func (o *Main) Run() (err error) {

	// message
	cputime := time.Now()
	if o.ShowMsg {
		io.Pf("\n%s\n", o.Sys.Data.Desc)
		io.Pf("number of processors = %d\n", o.Nproc)
		io.Pf("number of vertices   = %d\n", o.Sys.Nverts)
		io.Pf("number of equations  = %d\n", o.Sys.Nverts*o.Sys.Neq)
	}

	// assembly
	err = o.Assemble()
	if err != nil {
		return
	}
	err = o.SetRhs()
	if err != nil {
		return
	}

	// constraints
	err = o.ApplyEbcs()
	if err != nil {
		return
	}
	err = o.ApplyTies()
	if err != nil {
		return
	}

	// save matrix before solution
	err = o.SaveMatrix()
	if err != nil {
		return
	}

	// solve
	if !o.Sys.Data.NoSolve {
		err = o.Solve()
		if err != nil {
			return
		}
	}

	// save results
	err = o.SaveResults()
	if err != nil {
		return
	}

	// message
	if o.ShowMsg {
		io.Pflmag("cpu time   = %v\n", time.Now().Sub(cputime))
	}
	return
}

// Clean releases the matrix and vectors; call it after Run when results are no longer needed
func (o *Main) Clean() {
	o.A.Destroy()
	o.X.Destroy()
	o.B.Destroy()
}
