// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_bcs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs01. set row")

	A := serialChain(3, 2)
	A.Reset(3.5)

	// row of unknown (1, 1) => scalar row 3
	require.NoError(tst, A.SetRow(1, 1, 1, 0))
	for icol := 0; icol < 6; icol++ {
		res, err := A.GetValue(icol, 3)
		require.NoError(tst, err)
		if icol == 3 {
			chk.Float64(tst, "diagonal", 1e-17, res, 1)
		} else {
			chk.Float64(tst, io.Sf("A[3,%d]", icol), 1e-17, res, 0)
		}
	}

	// other row of the same block-row is untouched
	res, _ := A.GetValue(0, 2)
	chk.Float64(tst, "A[2,0]", 1e-17, res, 3.5)

	// non-zero off-diagonal
	require.NoError(tst, A.SetRow(0, 0, 2, -1))
	for icol := 0; icol < 4; icol++ {
		res, _ = A.GetValue(icol, 0)
		if icol == 0 {
			chk.Float64(tst, "diagonal", 1e-17, res, 2)
		} else {
			chk.Float64(tst, io.Sf("A[0,%d]", icol), 1e-17, res, -1)
		}
	}
	require.Panics(tst, func() { A.SetRow(0, 2, 1, 0) })

	var eerr *EntryError
	require.True(tst, errors.As(A.SetRow(3, 0, 1, 0), &eerr))
}

func Test_bcs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs02. tie block-row pairs")

	A := full(3, 2)
	for irow := 0; irow < 6; irow++ {
		for icol := 0; icol < 6; icol++ {
			A.SetValue(icol, irow, float64(10*irow+icol+1))
		}
	}

	// tie row 0 to row 2
	require.NoError(tst, A.TieBlockRowPairs(0, 2))

	// row 2 (scalars 4 and 5) holds the identity on its self block
	for r := 4; r < 6; r++ {
		for icol := 0; icol < 6; icol++ {
			res, _ := A.GetValue(icol, r)
			if icol == r {
				chk.Float64(tst, io.Sf("A[%d,%d]", r, icol), 1e-17, res, 1)
			} else {
				chk.Float64(tst, io.Sf("A[%d,%d]", r, icol), 1e-17, res, 0)
			}
		}
	}

	// row 0 holds old row 2, except for -1 on the diagonal of its block at column 2
	for r := 0; r < 2; r++ {
		for icol := 0; icol < 6; icol++ {
			res, _ := A.GetValue(icol, r)
			correct := float64(10*(r+4) + icol + 1)
			if icol == r+4 {
				correct = -1
			}
			chk.Float64(tst, io.Sf("A[%d,%d]", r, icol), 1e-17, res, correct)
		}
	}

	// row 1 is untouched
	res, _ := A.GetValue(3, 2)
	chk.Float64(tst, "A[2,3]", 1e-17, res, 24)

	require.Error(tst, A.TieBlockRowPairs(1, 1))
}

func Test_bcs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs03. tie rows with different columns")

	A := serialChain(5, 1)
	A.Reset(2)
	var serr *StructureError
	err := A.TieBlockRowPairs(0, 2)
	require.True(tst, errors.As(err, &serr))
	chk.IntAssert(serr.To, 0)
	chk.IntAssert(serr.From, 2)
	chk.IntAssert(serr.Nto, 2)
	chk.IntAssert(serr.Nfrom, 3)
	res, _ := A.GetValue(2, 2)
	chk.Float64(tst, "A[2,2]", 1e-17, res, 2)

	// same length, different columns
	err = A.TieBlockRowPairs(1, 2)
	require.True(tst, errors.As(err, &serr))

	// rows 1,2,3 of a chain have equal lengths but different columns; rows of a 2-chain are equal
	B := serialChain(2, 1)
	B.Reset(5)
	require.NoError(tst, B.TieBlockRowPairs(1, 0))
	res, _ = B.GetValue(0, 0)
	chk.Float64(tst, "B[0,0]", 1e-17, res, 1)
	res, _ = B.GetValue(1, 0)
	chk.Float64(tst, "B[0,1]", 1e-17, res, 0)
	res, _ = B.GetValue(0, 1)
	chk.Float64(tst, "B[1,0]", 1e-17, res, -1)
	res, _ = B.GetValue(1, 1)
	chk.Float64(tst, "B[1,1]", 1e-17, res, 5)
}

func Test_bcs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs04. get column and replace to zero")

	A := serialChain(5, 1)
	require.NoError(tst, assembleLaplacian(A, []int{0, 1, 2, 3, 4}))
	col, err := A.GetColumnAndReplaceToZero(1, 0)
	require.NoError(tst, err)
	chk.Array(tst, "column 1", 1e-17, col, []float64{-1, 2, -1, 0, 0})
	for irow := 0; irow < 3; irow++ {
		res, _ := A.GetValue(1, irow)
		chk.Float64(tst, io.Sf("A[%d,1]", irow), 1e-17, res, 0)
	}
	res, _ := A.GetValue(2, 1)
	chk.Float64(tst, "A[1,2]", 1e-17, res, -1)

	var eerr *EntryError
	_, err = A.GetColumnAndReplaceToZero(5, 0)
	require.True(tst, errors.As(err, &eerr))
}

func Test_diag01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diag01. diagonal")

	A := serialChain(3, 2)
	A.Reset(7)
	A.Reset(0)
	chk.Array(tst, "diag", 1e-17, A.GetDiagonal(), make([]float64, 6))

	A.SetDiagonal([]float64{1, 2, 3, 4, 5, 6})
	A.AddDiagonal([]float64{1, 1, 1, 1, 1, 1})
	chk.Array(tst, "diag", 1e-17, A.GetDiagonal(), []float64{2, 3, 4, 5, 6, 7})
	res, _ := A.GetValue(3, 3)
	chk.Float64(tst, "A[3,3]", 1e-17, res, 5)
	res, _ = A.GetValue(2, 3)
	chk.Float64(tst, "A[3,2]", 1e-17, res, 0)

	require.Panics(tst, func() { A.SetDiagonal([]float64{1}) })
	A.Destroy()
	require.Panics(tst, func() { A.GetDiagonal() })
}
