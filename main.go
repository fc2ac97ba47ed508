// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/golss/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.WorldRank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop()
	}()
	mpi.Start()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sys", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	allowParallel := io.ArgToBool(3, true)
	alias := io.ArgToString(4, "")
	profile := io.ArgToBool(5, false)

	// message
	if mpi.WorldRank() == 0 && verbose {
		io.PfWhite("\nGolss -- Go distributed block-sparse linear systems\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"allow parallel run", "allowParallel", allowParallel,
			"word to add to results", "alias", alias,
			"profile cpu", "profile", profile,
		))
	}

	// profiling?
	if profile {
		defer utl.Prof(false, !verbose)()
	}

	// system data
	analysis := fem.NewMain(fnamepath, alias, erasePrev, allowParallel, verbose)
	defer analysis.Clean()
	if analysis.ShowMsg {
		io.Pf("system key           = %s\n", analysis.Sys.Key)
		io.Pf("output directory     = %s\n", analysis.Sys.DirOut)
		io.Pf("linear solver        = %s\n", analysis.Sys.LinSol.Name)
		io.Pf("partitions           = %d\n", analysis.Sys.Nparts)
		io.Pf("processors           = %d\n", analysis.Nproc)
	}

	// assemble and solve
	err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
