package main

import (
	"fmt"

	"github.com/aglyzov/go-ordkey/ordkey"
)

func main() {
	const max = 9

	low, high := ordkey.New(0), ordkey.New(max)

	fmt.Printf("low  = %v\n", low)
	fmt.Printf("high = %v\n", high)

	// keep inserting just below high; every key lands strictly between
	// its neighbours and no existing key is ever renumbered
	cur := low
	for i := 0; i < 12; i++ {
		cur = ordkey.Between(cur, high, max)
		fmt.Printf("  -> %v\n", cur)
	}
}
