// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Coo holds the part of a global matrix stored by one processor, in global numbering
type Coo struct {
	Proc  int       // processor that saved this part
	Nproc int       // number of processors
	Neq   int       // number of equations per block
	N     int       // dimension of global matrix (number of scalar rows)
	Rows  []int     // row indices
	Cols  []int     // column indices
	Vals  []float64 // values
}

// Coo returns the stored entries of this processor
func (o *Matrix) Coo() (c *Coo) {
	c = &Coo{Proc: o.cc.Rank(), Nproc: o.cc.Size(), Neq: o.neq, N: o.nglobal * o.neq}
	c.Rows, c.Cols, c.Vals = o.Data()
	return
}

// SaveCoo saves the entries stored by this processor to a file named after fnkey and the
// processor number
func (o *Matrix) SaveCoo(dir, fnkey, enctype string, verbose bool) (err error) {
	o.checkCreated("SaveCoo")
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(o.Coo())
	if err != nil {
		return chk.Err("cannot encode matrix %q\n%v", o.Name, err)
	}
	return SaveFile(OutCooPath(dir, fnkey, enctype, o.cc.Rank()), &buf, verbose)
}

// ReadCoo reads the entries saved by processor proc
func ReadCoo(dir, fnkey, enctype string, proc int) (c *Coo, err error) {
	fil, err := os.Open(OutCooPath(dir, fnkey, enctype, proc))
	if err != nil {
		return
	}
	defer func() {
		errclose := fil.Close()
		if err == nil {
			err = errclose
		}
	}()
	c = new(Coo)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(c)
	if err != nil {
		return nil, chk.Err("cannot decode matrix entries of processor %d\n%v", proc, err)
	}
	return
}

// SaveVector saves the owned entries of all processors in global numbering; only root writes
// the file. This is collective.
func (o *Vector) SaveVector(dir, fnkey, enctype string, nglobal int, verbose bool) (err error) {
	global := o.Gather(nglobal)
	if o.cc.Rank() != 0 {
		return
	}
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(global)
	if err != nil {
		return chk.Err("cannot encode vector %q\n%v", o.Name, err)
	}
	return SaveFile(OutVecPath(dir, fnkey, o.Name, enctype), &buf, verbose)
}

// ReadVector reads a vector saved by SaveVector
func ReadVector(dir, fnkey, name, enctype string) (global []float64, err error) {
	fil, err := os.Open(OutVecPath(dir, fnkey, name, enctype))
	if err != nil {
		return
	}
	defer func() {
		errclose := fil.Close()
		if err == nil {
			err = errclose
		}
	}()
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&global)
	if err != nil {
		return nil, chk.Err("cannot decode vector %q\n%v", name, err)
	}
	return
}

// OutCooPath returns the filename of the matrix entries saved by processor proc
func OutCooPath(dir, fnkey, enctype string, proc int) string {
	return path.Join(dir, io.Sf("%s_p%d_coo.%s", fnkey, proc, enctype))
}

// OutVecPath returns the filename of a vector saved by root
func OutVecPath(dir, fnkey, name, enctype string) string {
	return path.Join(dir, io.Sf("%s_%s.%s", fnkey, name, enctype))
}

// SaveFile writes buf to filename
func SaveFile(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		errclose := fil.Close()
		if err == nil {
			err = errclose
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
