// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"math"

	"github.com/cpmech/golss/out"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	sysfn, _ := io.ArgToFilename(0, "chain5", ".sys", true)
	alias := io.ArgToString(1, "")
	showDense := io.ArgToBool(2, false)

	// print input data
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"system filename", "sysfn", sysfn,
		"word added to results", "alias", alias,
		"print dense matrix", "showDense", showDense,
	))

	// load results
	out.Start(sysfn, alias)
	out.LoadResults()
	io.Pf("number of processors = %d\n", out.Sum.Nproc)
	io.Pf("number of equations  = %d\n", out.Sum.Neq)
	io.Pf("number of vertices   = %d\n", out.Sum.Nverts)
	io.Pf("number of blocks     = %d\n", out.Sum.Nblocks)
	io.Pf("number of entries    = %d\n", len(out.A.Vals))

	// matrix
	if showDense {
		io.Pf("\nA =\n%v\n", mat.Formatted(out.Dense(out.A), mat.Squeeze()))
	}

	// solution
	if !out.Sum.Solved {
		io.Pfblue2("\nsystem was not solved\n")
		return
	}
	for eq := 0; eq < out.Sys.Neq; eq++ {
		io.Pf("x[:,%d] = %v\n", eq, out.GetVerts(eq))
	}
	var rmax float64
	for _, r := range out.Residual() {
		rmax = math.Max(rmax, math.Abs(r))
	}
	io.Pforan("max(|A·x - b|) = %g\n", rmax)
}
