// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import "github.com/cpmech/gosl/chk"

// SetRow replaces the scalar row of the unknown (iblockrow, ieq): all entries of the row are
// set to offdiag and then the diagonal entry is set to diag. With diag=1 and offdiag=0 the
// unknown is decoupled from the system and becomes equal to the corresponding right-hand side.
func (o *Matrix) SetRow(iblockrow, ieq int, diag, offdiag float64) (err error) {
	o.checkCreated("SetRow")
	o.checkEq("SetRow", ieq)
	m, ok := o.rowOf(iblockrow)
	if !ok {
		return &EntryError{iblockrow, iblockrow}
	}
	if o.diag[m] < 0 {
		return &EntryError{iblockrow, iblockrow}
	}
	n := o.neq
	for k := range o.cols[m] {
		blk := o.blockAt(m, k)
		for c := 0; c < n; c++ {
			blk[ieq*n+c] = offdiag
		}
	}
	o.blockAt(m, o.diag[m])[ieq*n+ieq] = diag
	return
}

// TieBlockRowPairs ties the unknowns of two block-rows with equal column lists: the values of
// row ifrom are moved to row ito, row ifrom is zeroed and then +1 is written on the diagonal of
// the self block of ifrom and -1 on the diagonal of the block of row ito at column ifrom.
// Both rows must be owned by this processor. Nothing is changed if an error is returned.
func (o *Matrix) TieBlockRowPairs(ito, ifrom int) (err error) {
	o.checkCreated("TieBlockRowPairs")
	mto, ok := o.rowOf(ito)
	if !ok {
		return &EntryError{ito, ito}
	}
	mfrom, ok := o.rowOf(ifrom)
	if !ok {
		return &EntryError{ifrom, ifrom}
	}
	cto, cfrom := o.cols[mto], o.cols[mfrom]
	if len(cto) != len(cfrom) {
		return &StructureError{ito, ifrom, len(cto), len(cfrom)}
	}
	for k := range cto {
		if cto[k] != cfrom[k] {
			return &StructureError{ito, ifrom, len(cto), len(cfrom)}
		}
	}
	kdiag := o.diag[mfrom]
	if kdiag < 0 {
		return &EntryError{ifrom, ifrom}
	}
	if mto == mfrom {
		return chk.Err("cannot tie block-row %d to itself", ito)
	}
	for k := range cfrom {
		src := o.blockAt(mfrom, k)
		copy(o.blockAt(mto, k), src)
		for l := range src {
			src[l] = 0
		}
	}
	n := o.neq
	from := o.blockAt(mfrom, kdiag)
	to := o.blockAt(mto, kdiag) // column ifrom of row ito; column lists are equal
	for i := 0; i < n; i++ {
		from[i*n+i] = 1
		to[i*n+i] = -1
	}
	return
}

// GetColumnAndReplaceToZero returns the values of the scalar column (iblockcol, ieq) over all
// stored rows and sets them to zero. The result has one value per stored scalar row, following
// the order of owned block-rows in the communication pattern; absent blocks give zeros.
func (o *Matrix) GetColumnAndReplaceToZero(iblockcol, ieq int) (values []float64, err error) {
	o.checkCreated("GetColumnAndReplaceToZero")
	o.checkEq("GetColumnAndReplaceToZero", ieq)
	if iblockcol < 0 || iblockcol >= o.nbcols {
		return nil, &EntryError{-1, iblockcol}
	}
	mcol := o.p2m.P2m[iblockcol]
	n := o.neq
	values = make([]float64, o.nbrows*n)
	for m := 0; m < o.nbrows; m++ {
		k, found := o.pos[m][mcol]
		if !found {
			continue
		}
		blk := o.blockAt(m, k)
		for r := 0; r < n; r++ {
			values[m*n+r] = blk[r*n+ieq]
			blk[r*n+ieq] = 0
		}
	}
	return
}
