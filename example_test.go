package flagset_test

import (
	"fmt"

	"github.com/iotaledger/flagset"
	"github.com/iotaledger/flagset/bitmask"
)

func Example() {
	const (
		FlagVisible uint8 = 1 << iota
		FlagLocked
		FlagArchived
	)

	flags := flagset.Wrap[uint8](bitmask.New[uint8]())
	flags.Enable(FlagVisible | FlagLocked)
	fmt.Println(flags.IsEnabled(FlagLocked))

	// FlagLocked is set, so the whole group is cleared
	flags.Toggle(FlagLocked | FlagArchived)
	fmt.Println(flags.IsEnabled(FlagLocked), flags.IsEnabled(FlagArchived))
	fmt.Printf("%08b\n", flags.Value())

	// Output:
	// true
	// false false
	// 00000001
}
