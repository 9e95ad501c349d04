package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	View  bool
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.View = boolEnv("DW_DEBUG_VIEW")
	d.Patch = boolEnv("DW_DEBUG_PATCH")
	d.Query = boolEnv("DW_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func View() bool {
	return d.View
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
