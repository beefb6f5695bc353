package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load  bool
	Match bool
	Set   bool
	Find  bool
	Guard bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("DLMATCH_DEBUG_LOAD")
	d.Match = boolEnv("DLMATCH_DEBUG_MATCH")
	d.Set = boolEnv("DLMATCH_DEBUG_SET")
	d.Find = boolEnv("DLMATCH_DEBUG_FIND")
	d.Guard = boolEnv("DLMATCH_DEBUG_GUARD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Match() bool {
	return d.Match
}
func Set() bool {
	return d.Set
}
func Find() bool {
	return d.Find
}
func Guard() bool {
	return d.Guard
}
