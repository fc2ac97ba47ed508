// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"os"
	"testing"

	"github.com/cpmech/golss/comm"
	"github.com/cpmech/golss/inp"
	"github.com/cpmech/golss/lss"
	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_fileio01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio01. summary with gob encoder")

	dir := "/tmp/golss/fileio01"
	require.NoError(tst, os.MkdirAll(dir, 0777))
	sumA := Summary{Neq: 2, Nverts: 7, Nblocks: 19, Solved: true}
	require.NoError(tst, sumA.Save(dir, "fileio01", "gob", 3, 0, chk.Verbose))

	// other processors do not write
	sumC := Summary{}
	require.NoError(tst, sumC.Save(dir, "fileio01-other", "gob", 3, 1, false))
	_, err := os.Stat(out_sum_path(dir, "fileio01-other", "gob", 0))
	require.True(tst, os.IsNotExist(err))

	var sumB Summary
	require.NoError(tst, sumB.Read(dir, "fileio01", "gob"))
	require.Equal(tst, sumA, sumB)
	chk.IntAssert(sumB.Nproc, 3)
	require.Equal(tst, dir, sumB.Dirout)

	require.Error(tst, sumB.Read(dir, "nofile", "gob"))
}

func Test_fileio02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fileio02. run without solving")

	sys, err := inp.ReadSys("data/chain5.sys", "nosolve", true)
	require.NoError(tst, err)
	sys.Data.NoSolve = true
	sys.EncType = "gob"

	m, err := NewMainComm(sys, comm.Serial{}, false)
	require.NoError(tst, err)
	require.NoError(tst, m.Run())
	m.Clean()

	var sum Summary
	require.NoError(tst, sum.Read(sys.DirOut, sys.Key, "gob"))
	require.False(tst, sum.Solved)
	chk.IntAssert(sum.Nblocks, 13)

	b, err := lss.ReadVector(sys.DirOut, sys.Key, "b", "gob")
	require.NoError(tst, err)
	chk.Array(tst, "b", 1e-17, b, []float64{0, 1, 1, 1, 0})
	_, err = lss.ReadVector(sys.DirOut, sys.Key, "x", "gob")
	require.Error(tst, err)
}
