// Package debug gates diagnostic logging behind environment variables so
// the core stays silent by default.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decompose bool
	Prove     bool
	SAT       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decompose = boolEnv("GENTZEN_DEBUG_DECOMPOSE")
	d.Prove = boolEnv("GENTZEN_DEBUG_PROVE")
	d.SAT = boolEnv("GENTZEN_DEBUG_SAT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decompose() bool {
	return d.Decompose
}
func Prove() bool {
	return d.Prove
}
func SAT() bool {
	return d.SAT
}
