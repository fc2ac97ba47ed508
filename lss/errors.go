// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import "github.com/cpmech/gosl/io"

// EntryError reports an access to a block that is not stored by this processor: either the
// (row, col) pair is absent from the sparsity pattern or the block-row is a ghost.
// Row and Col are process-local block indices; -1 marks an index that does not apply.
type EntryError struct {
	Row, Col int
}

func (o *EntryError) Error() string {
	return io.Sf("invalid entry access: block (row=%d, col=%d) is not stored by this processor", o.Row, o.Col)
}

// StructureError reports two block-rows that cannot be tied because their column lists differ
type StructureError struct {
	To, From   int // process-local block-rows
	Nto, Nfrom int // number of blocks in each row
}

func (o *StructureError) Error() string {
	return io.Sf("cannot tie block-rows %d and %d: column lists do not match (%d blocks != %d blocks)", o.To, o.From, o.Nto, o.Nfrom)
}
