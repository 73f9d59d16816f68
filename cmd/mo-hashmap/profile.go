// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"github.com/4Looped/hash-map/pkg/logutil"
)

var (
	cpuProfilePathFlag    = flag.String("cpu-profile", "", "write cpu profile to the specified file")
	allocsProfilePathFlag = flag.String("allocs-profile", "", "write allocs profile to the specified file")
)

// startCPUProfile returns nil when no cpu profile was asked for.
func startCPUProfile() func() {
	cpuProfilePath := *cpuProfilePathFlag
	if cpuProfilePath == "" {
		return nil
	}
	f, err := os.Create(cpuProfilePath)
	if err != nil {
		logutil.Errorf("create cpu profile %s: %v", cpuProfilePath, err)
		return nil
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		logutil.Errorf("start cpu profile: %v", err)
		f.Close()
		return nil
	}
	logutil.Infof("CPU profiling enabled, writing to %s", cpuProfilePath)
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}

func writeAllocsProfile() {
	profilePath := *allocsProfilePathFlag
	if profilePath == "" {
		return
	}
	profile := pprof.Lookup("allocs")
	if profile == nil {
		return
	}
	f, err := os.Create(profilePath)
	if err != nil {
		logutil.Errorf("create allocs profile %s: %v", profilePath, err)
		return
	}
	defer f.Close()
	if err := profile.WriteTo(f, 0); err != nil {
		logutil.Errorf("write allocs profile: %v", err)
		return
	}
	logutil.Infof("Allocs profile written to %s", profilePath)
}
