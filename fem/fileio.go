// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"os"
	"path"

	"github.com/cpmech/golss/comm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SaveMatrix saves the matrix entries of this processor and, if requested, a text file with
// the printed matrix
func (o *Main) SaveMatrix() (err error) {
	dir, key, enc := o.Sys.DirOut, o.Sys.Key, o.Sys.EncType
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return chk.Err("cannot create directory for output results (%s): %v", dir, err)
	}
	err = o.A.SaveCoo(dir, key, enc, o.ShowMsg)
	if err != nil {
		return
	}
	if o.Sys.Data.Print {
		err = o.A.PrintFile(out_mat_path(dir, key, o.Proc), o.ShowMsg)
	}
	return
}

// SaveResults saves right-hand side, solution and summary. This is collective.
func (o *Main) SaveResults() (err error) {
	dir, key, enc := o.Sys.DirOut, o.Sys.Key, o.Sys.EncType
	nglobal := o.A.NumGlobalBlockRows()
	err = o.B.SaveVector(dir, key, enc, nglobal, o.ShowMsg)
	if err != nil {
		return
	}
	if !o.Sys.Data.NoSolve {
		err = o.X.SaveVector(dir, key, enc, nglobal, o.ShowMsg)
		if err != nil {
			return
		}
	}
	nblocks := o.A.NumEntries() / (o.Sys.Neq * o.Sys.Neq)
	o.Summary.Neq = o.Sys.Neq
	o.Summary.Nverts = nglobal
	o.Summary.Nblocks = comm.SumInts(o.Cc, nblocks)[0]
	o.Summary.Solved = !o.Sys.Data.NoSolve
	return o.Summary.Save(dir, key, enc, o.Nproc, o.Proc, o.ShowMsg)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_mat_path(dir, fnkey string, proc int) string {
	return path.Join(dir, io.Sf("%s_p%d_mat.dat", fnkey, proc))
}
