// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lss

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/cpmech/golss/comm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// chain5 holds the expected triplets of the 5-vertices Laplacian with fixed ends
var chain5 = struct {
	rows, cols []int
	vals       []float64
}{
	rows: []int{0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4},
	cols: []int{0, 1, 0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4},
	vals: []float64{1, 0, -1, 2, -1, -1, 2, -1, -1, 2, -1, 0, 1},
}

func Test_data01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("data01. 1D chain with fixed ends")

	A := serialChain(5, 1)
	require.NoError(tst, assembleLaplacian(A, []int{0, 1, 2, 3, 4}))
	require.NoError(tst, A.SetRow(0, 0, 1, 0))
	require.NoError(tst, A.SetRow(4, 0, 1, 0))

	rows, cols, vals := A.Data()
	chk.Ints(tst, "rows", rows, chain5.rows)
	chk.Ints(tst, "cols", cols, chain5.cols)
	chk.Array(tst, "vals", 1e-17, vals, chain5.vals)

	// triplet and COO
	var t la.Triplet
	A.ToTriplet(&t)
	chk.IntAssert(t.Len(), 13)
	coo := A.ToCOO()
	r, c := coo.Dims()
	chk.IntAssert(r, 5)
	chk.IntAssert(c, 5)
	require.True(tst, mat.Equal(coo, mat.NewDense(5, 5, []float64{
		1, 0, 0, 0, 0,
		-1, 2, -1, 0, 0,
		0, -1, 2, -1, 0,
		0, 0, -1, 2, -1,
		0, 0, 0, 0, 1,
	})))
	if chk.Verbose {
		io.Pf("%v\n", mat.Formatted(coo))
	}
}

func Test_data02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("data02. global numbering and ordering")

	// local order differs from global order; neq=2
	cp, err := comm.NewPattern([]int{1, 0}, []bool{true, true})
	require.NoError(tst, err)
	A := NewMatrix("swap")
	require.NoError(tst, A.Create(comm.Serial{}, cp, 2, []int{1, 0, 0}, []int{0, 2, 3}))

	// local block-row 0 (gid 1) has columns [1 (gid 0), 0 (gid 1)]; local block-row 1 (gid 0) has column 0 (gid 1) only
	for irow := 0; irow < 2; irow++ {
		for icol := 0; icol < 4; icol++ {
			A.SetValue(icol, irow, float64(10*irow+icol))
		}
	}
	A.SetValue(0, 2, 99)
	require.Error(tst, A.SetValue(2, 2, 1))

	rows, cols, vals := A.Data()
	chk.Ints(tst, "rows", rows, []int{2, 2, 3, 3, 2, 2, 3, 3, 0, 0, 1, 1})
	chk.Ints(tst, "cols", cols, []int{0, 1, 0, 1, 2, 3, 2, 3, 2, 3, 2, 3})
	chk.Array(tst, "vals", 1e-17, vals, []float64{2, 3, 12, 13, 0, 1, 10, 11, 99, 0, 0, 0})
}

func Test_data03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("data03. matrix-vector multiplication")

	A := serialChain(5, 1)
	require.NoError(tst, assembleLaplacian(A, []int{0, 1, 2, 3, 4}))
	y := make([]float64, 5)
	A.MulVec(y, []float64{1, 2, 3, 4, 5})
	chk.Array(tst, "y", 1e-15, y, []float64{-1, 0, 0, 0, 1})
	require.Panics(tst, func() { A.MulVec(y, []float64{1}) })
}

func Test_print01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("print01. print")

	A := serialChain(2, 1)
	require.NoError(tst, assembleLaplacian(A, []int{0, 1}))

	var buf bytes.Buffer
	require.NoError(tst, A.Print(&buf))
	io.Pforan("%v", buf.String())
	correct := "0 0 1\n" +
		"1 0 -1\n" +
		"0 -1 -1\n" +
		"1 -1 1\n" +
		"# name:                 chain\n" +
		"# type_name:            BlockSparseMatrix\n" +
		"# process:              0\n" +
		"# number of equations:  1\n" +
		"# number of rows:       2\n" +
		"# number of cols:       2\n" +
		"# number of block rows: 2\n" +
		"# number of block cols: 2\n" +
		"# number of entries:    4\n"
	require.Equal(tst, correct, buf.String())
	require.Equal(tst, correct, A.String())

	// file
	dir := filepath.Join(os.TempDir(), "golss", "lss")
	require.NoError(tst, os.MkdirAll(dir, 0777))
	fn := filepath.Join(dir, "chain.dat")
	require.NoError(tst, A.PrintFile(fn, chk.Verbose))
	b := io.ReadFile(fn)
	require.True(tst, strings.HasPrefix(string(b), "ZONE T=\"BlockSparseMatrix chain\"\n0 0 1\n"))
}

func Test_distr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("distr01. 1D chain on two processors")

	parts := []int{0, 0, 0, 1, 1}
	members := comm.NewGroup(2)
	type result struct {
		rows, cols []int
		vals, x    []float64
		err        error
	}
	results := make([]result, 2)

	var wg sync.WaitGroup
	for _, m := range members {
		wg.Add(1)
		go func(cc comm.Communicator) {
			defer wg.Done()
			r := cc.Rank()
			res := &results[r]
			cp, conn, starts := chainPart(parts, r)
			A := NewMatrix("chain")
			if res.err = A.Create(cc, cp, 1, conn, starts); res.err != nil {
				return
			}
			if res.err = assembleLaplacian(A, cp.Gids); res.err != nil {
				return
			}

			// fixed ends and right-hand side
			b := NewVector("b")
			x := NewVector("x")
			b.Create(cc, cp, 1)
			x.Create(cc, cp, 1)
			for i, g := range cp.Gids {
				if !cp.Updatable[i] {
					continue
				}
				if g == 0 || g == 4 {
					A.SetRow(i, 0, 1, 0)
					continue
				}
				b.SetValue(i, 1)
			}
			res.rows, res.cols, res.vals = A.Data()

			// solve
			s, _ := GetSolver("dense", nil)
			if res.err = A.Solve(s, x, b); res.err != nil {
				return
			}
			res.x = x.Data()
		}(m)
	}
	wg.Wait()

	require.NoError(tst, results[0].err)
	require.NoError(tst, results[1].err)

	// rank 0 holds rows 0, 1 and 2; rank 1 holds rows 3 and 4
	chk.Ints(tst, "rows @ 0", results[0].rows, chain5.rows[:8])
	chk.Ints(tst, "cols @ 0", results[0].cols, chain5.cols[:8])
	chk.Array(tst, "vals @ 0", 1e-17, results[0].vals, chain5.vals[:8])
	chk.Ints(tst, "rows @ 1", results[1].rows, chain5.rows[8:])
	chk.Ints(tst, "cols @ 1", results[1].cols, chain5.cols[8:])
	chk.Array(tst, "vals @ 1", 1e-17, results[1].vals, chain5.vals[8:])

	// solution, including ghosts: rank 0 has gids [0,1,2,3]; rank 1 has gids [2,3,4]
	chk.Array(tst, "x @ 0", 1e-14, results[0].x, []float64{0, 1.5, 2, 1.5})
	chk.Array(tst, "x @ 1", 1e-14, results[1].x, []float64{2, 1.5, 0})
}
