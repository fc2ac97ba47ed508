// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sys) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for linear systems
type Data struct {
	Desc    string `json:"desc"`    // description of system
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/golss
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
	Print   bool   `json:"print"`   // print matrix to text file (one file per processor)
	NoSolve bool   `json:"nosolve"` // skip solution of linear system
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `json:"name"`      // "mumps", "umfpack" or "dense"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Timing    bool   `json:"timing"`    // show timing statistics
}

// EbcData holds data for essential boundary conditions applied by row replacement
type EbcData struct {
	Vert    int     `json:"vert"`    // vertex (block-row)
	Eq      int     `json:"eq"`      // equation index in [0, neq)
	Val     float64 `json:"val"`     // prescribed value
	Diag    float64 `json:"diag"`    // diagonal value; 0 => 1
	Offdiag float64 `json:"offdiag"` // value of all other entries in row
}

// TieData holds two vertices whose unknowns are tied together
type TieData struct {
	To   int `json:"to"`   // vertex receiving the equations of From
	From int `json:"from"` // vertex whose unknowns are made equal to the unknowns of To
}

// System holds all data describing a linear system
type System struct {

	// input
	Data   Data       `json:"data"`   // global data
	LinSol LinSolData `json:"linsol"` // linear solver data
	Neq    int        `json:"neq"`    // number of equations per vertex
	Nverts int        `json:"nverts"` // number of vertices (block-rows)
	Kmat   []float64  `json:"kmat"`   // default cell matrix
	Cells  []*Cell    `json:"cells"`  // cells
	Parts  []int      `json:"parts"`  // [nverts] processor owning each vertex. empty => all on 0
	Rhs    []float64  `json:"rhs"`    // [nverts*neq] right-hand side. empty => zero
	Ebcs   []*EbcData `json:"ebcs"`   // essential boundary conditions
	Ties   []*TieData `json:"ties"`   // tied vertices

	// derived
	DirOut  string // directory to save results
	Key     string // system key; e.g. mysys01.sys => mysys01 or mysys01-alias
	EncType string // encoder type
	Nparts  int    // number of partitions == max(Parts) + 1
}

// ReadSys reads all data from a .sys JSON file
func ReadSys(sysfilepath, alias string, erasefiles bool) (o *System, err error) {

	// new system
	o = new(System)

	// read file
	_, err = os.Stat(os.ExpandEnv(sysfilepath))
	if err != nil {
		return nil, chk.Err("cannot read system file %q\n%v", sysfilepath, err)
	}
	b := io.ReadFile(sysfilepath)

	// set default values
	o.LinSol.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal system file %q\n%v", sysfilepath, err)
	}

	// filename key
	fnkey := io.FnKey(filepath.Base(sysfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/golss/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// check data and set derived values
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("invalid system file %q\n%v", sysfilepath, err)
	}

	// create directory and erase previous results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// PostProcess checks the data just read and sets derived values
func (o *System) PostProcess() (err error) {

	// dimensions
	if o.Neq < 1 {
		return chk.Err("number of equations per vertex must be at least 1. neq=%d is invalid", o.Neq)
	}
	if o.Nverts < 1 {
		return chk.Err("number of vertices must be at least 1. nverts=%d is invalid", o.Nverts)
	}

	// partitions
	if len(o.Parts) == 0 {
		o.Parts = make([]int, o.Nverts)
	}
	if len(o.Parts) != o.Nverts {
		return chk.Err("size of parts must be equal to the number of vertices. %d != %d", len(o.Parts), o.Nverts)
	}
	o.Nparts = 1
	for v, p := range o.Parts {
		if p < 0 {
			return chk.Err("partition of vertex %d is negative (%d)", v, p)
		}
		if p+1 > o.Nparts {
			o.Nparts = p + 1
		}
	}

	// cells
	for _, c := range o.Cells {
		err = c.postProcess(o.Nverts, o.Neq, o.Kmat)
		if err != nil {
			return
		}
	}

	// right-hand side
	if len(o.Rhs) == 0 {
		o.Rhs = make([]float64, o.Nverts*o.Neq)
	}
	if len(o.Rhs) != o.Nverts*o.Neq {
		return chk.Err("size of rhs must be equal to nverts*neq. %d != %d", len(o.Rhs), o.Nverts*o.Neq)
	}

	// boundary conditions
	for i, e := range o.Ebcs {
		if e.Vert < 0 || e.Vert >= o.Nverts || e.Eq < 0 || e.Eq >= o.Neq {
			return chk.Err("essential boundary condition %d is invalid: vert=%d eq=%d", i, e.Vert, e.Eq)
		}
		if e.Diag == 0 {
			e.Diag = 1
		}
	}
	for i, t := range o.Ties {
		if t.To < 0 || t.To >= o.Nverts || t.From < 0 || t.From >= o.Nverts || t.To == t.From {
			return chk.Err("tie %d is invalid: to=%d from=%d", i, t.To, t.From)
		}
	}
	return
}

// GetInfo returns formatted information
func (o *System) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// SetDefault sets defaults values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}
