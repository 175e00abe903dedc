// flagctl applies a sequence of flag operations to a bitmask and prints the result.
//
//	flagctl [flags] op:mask ...
//
// Supported operations are enable, disable, toggle and check. Masks are parsed as Go integer literals, so decimal,
// 0b, 0o and 0x prefixed values as well as underscores are accepted:
//
//	flagctl --mask.width=8 --mask.value=0b0001 toggle:0b0011 check:0b0010
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/flagset/ierrors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
