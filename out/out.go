// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of linear systems solved by fem
package out

import (
	"github.com/cpmech/golss/fem"
	"github.com/cpmech/golss/inp"
	"github.com/cpmech/golss/lss"
	"github.com/cpmech/gosl/chk"
)

// Global variables
var (

	// data set by Start
	Sys *inp.System  // system data
	Sum *fem.Summary // summary of last run

	// results loaded by LoadResults
	A *lss.Coo  // global matrix merged from all processors
	X []float64 // solution in global numbering (gid*neq + eq)
	B []float64 // right-hand side in global numbering
)

// Start starts handling of results given a system input file
func Start(sysfnpath, alias string) {

	// input data
	var err error
	Sys, err = inp.ReadSys(sysfnpath, alias, false)
	if err != nil {
		chk.Panic("cannot read system input data:\n%v", err)
	}

	// summary
	Sum = new(fem.Summary)
	err = Sum.Read(Sys.DirOut, Sys.Key, Sys.EncType)
	if err != nil {
		chk.Panic("cannot read summary:\n%v", err)
	}

	// clear previous data
	A, X, B = nil, nil, nil
}

// LoadResults loads matrix and vectors saved by all processors
func LoadResults() {
	if Sum == nil {
		chk.Panic("Start must be called first")
	}
	var err error
	A, err = ReadMatrix(Sum.Dirout, Sum.Fnkey, Sys.EncType, Sum.Nproc)
	if err != nil {
		chk.Panic("cannot read matrix:\n%v", err)
	}
	B, err = lss.ReadVector(Sum.Dirout, Sum.Fnkey, "b", Sys.EncType)
	if err != nil {
		chk.Panic("cannot read right-hand side:\n%v", err)
	}
	if Sum.Solved {
		X, err = lss.ReadVector(Sum.Dirout, Sum.Fnkey, "x", Sys.EncType)
		if err != nil {
			chk.Panic("cannot read solution:\n%v", err)
		}
	}
}
