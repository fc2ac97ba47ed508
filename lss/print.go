// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"bytes"
	goio "io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Print writes all stored entries as lines "<globalCol> <-globalRow> <value>" followed by a
// summary with comment lines starting with "#"
func (o *Matrix) Print(w goio.Writer) (err error) {
	var buf bytes.Buffer
	o.print(&buf)
	_, err = w.Write(buf.Bytes())
	return
}

// String returns the same text written by Print
func (o *Matrix) String() string {
	var buf bytes.Buffer
	o.print(&buf)
	return buf.String()
}

// PrintFile writes a file with a ZONE header line followed by the text written by Print
func (o *Matrix) PrintFile(filename string, verbose bool) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "ZONE T=\"%s %s\"\n", o.TypeName(), o.Name)
	o.print(&buf)
	err = SaveFile(filename, &buf, verbose)
	if err != nil {
		return chk.Err("cannot print matrix %q to file:\n%v", o.Name, err)
	}
	return
}

// print writes entries and summary to buf
func (o *Matrix) print(buf *bytes.Buffer) {
	if !o.created {
		io.Ff(buf, "%s of type %s::IsCreated() is false, nothing is printed.", o.Name, o.TypeName())
		return
	}
	o.each(func(grow, gcol int, v float64) {
		io.Ff(buf, "%d %d %g\n", gcol, -grow, v)
	})
	io.Ff(buf, "# name:                 %s\n", o.Name)
	io.Ff(buf, "# type_name:            %s\n", o.TypeName())
	io.Ff(buf, "# process:              %d\n", o.cc.Rank())
	io.Ff(buf, "# number of equations:  %d\n", o.neq)
	io.Ff(buf, "# number of rows:       %d\n", o.NumRows())
	io.Ff(buf, "# number of cols:       %d\n", o.NumCols())
	io.Ff(buf, "# number of block rows: %d\n", o.nbrows)
	io.Ff(buf, "# number of block cols: %d\n", o.nbcols)
	io.Ff(buf, "# number of entries:    %d\n", len(o.vals))
}
