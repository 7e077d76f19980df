// Package debug holds trace switches set from the environment. Each switch
// is read once, at start up, from USPS_DEBUG_<NAME>.
package debug

import (
	"os"
	"strconv"
)

type Flag int

const (
	EncodeFlag Flag = iota
	DecodeFlag
	HTTPFlag
	PatchFlag
	QueryFlag
	numFlags
)

var envNames = [numFlags]string{
	EncodeFlag: "USPS_DEBUG_ENCODE",
	DecodeFlag: "USPS_DEBUG_DECODE",
	HTTPFlag:   "USPS_DEBUG_HTTP",
	PatchFlag:  "USPS_DEBUG_PATCH",
	QueryFlag:  "USPS_DEBUG_QUERY",
}

var enabled [numFlags]bool

func init() {
	for i, name := range envNames {
		enabled[i] = boolEnv(name)
	}
}

func boolEnv(v string) bool {
	b, _ := strconv.ParseBool(os.Getenv(v))
	return b
}

// Enabled reports whether the switch f is on.
func Enabled(f Flag) bool {
	return f >= 0 && f < numFlags && enabled[f]
}

// EnvName returns the environment variable controlling f.
func (f Flag) EnvName() string {
	if f < 0 || f >= numFlags {
		return ""
	}
	return envNames[f]
}

func Encode() bool { return enabled[EncodeFlag] }
func Decode() bool { return enabled[DecodeFlag] }
func HTTP() bool   { return enabled[HTTPFlag] }
func Patch() bool  { return enabled[PatchFlag] }
func Query() bool  { return enabled[QueryFlag] }
