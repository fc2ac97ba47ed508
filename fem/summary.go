// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path"

	"github.com/cpmech/golss/lss"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records summary of outputs
type Summary struct {
	Nproc   int    // number of processors used in last run; equal to 1 if not distributed
	Neq     int    // number of equations per vertex
	Nverts  int    // number of vertices; i.e. number of global block-rows
	Nblocks int    // number of stored blocks over all processors
	Solved  bool   // linear system was solved
	Dirout  string // directory where results are stored
	Fnkey   string // filename key of system
}

// Save saves summary to disc; only root writes the file
func (o *Summary) Save(dirout, fnkey, enctype string, nproc, proc int, verbose bool) (err error) {

	// set flags before saving
	o.Nproc = nproc
	o.Dirout = dirout
	o.Fnkey = fnkey

	// skip if not root
	if proc != 0 {
		return
	}

	// buffer and encoder
	var buf bytes.Buffer
	enc := lss.GetEncoder(&buf, enctype)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}

	// save file
	fn := out_sum_path(dirout, fnkey, enctype, 0)
	return lss.SaveFile(fn, &buf, verbose)
}

// Read reads summary back
func (o *Summary) Read(dirout, fnkey, enctype string) (err error) {

	// open file
	fn := out_sum_path(dirout, fnkey, enctype, 0) // reading always from proc # 0
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		errclose := fil.Close()
		if err == nil {
			err = errclose
		}
	}()

	// decode summary
	dec := lss.GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return chk.Err("cannot decode summary\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey, enctype string, proc int) string {
	return path.Join(dir, io.Sf("%s_p%d_sum.%s", fnkey, proc, enctype))
}
