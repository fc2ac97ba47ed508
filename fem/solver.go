// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/golss/lss"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Solve solves the assembled system with the linear solver named in the input data
func (o *Main) Solve() (err error) {
	ls := o.Sys.LinSol
	s, err := lss.GetSolver(ls.Name, &lss.SolverArgs{Symmetric: ls.Symmetric, Verbose: ls.Verbose, Timing: ls.Timing})
	if err != nil {
		return
	}
	err = o.A.Solve(s, o.X, o.B)
	if err != nil {
		return chk.Err("cannot solve linear system with %q solver:\n%v", ls.Name, err)
	}
	if o.ShowMsg {
		io.Pforan("linear system solved with %q\n", ls.Name)
	}
	return
}
