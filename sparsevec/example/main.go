package main

import (
	"fmt"

	"github.com/aglyzov/go-sparse/alloc"
	"github.com/aglyzov/go-sparse/sparsevec"
)

func main() {
	sv := sparsevec.New[string]()
	sv.Set(5, "five")
	sv.Set(2, "two")
	sv.Set(9, "nine")
	sv.Set(5, "FIVE") // replaces

	fmt.Printf("len: %d\n", sv.Len())
	sv.Iter(func(index int, val string) bool {
		fmt.Printf("%d -> %s\n", index, val)
		return true
	})

	if val, ok := sv.Get(7); ok {
		fmt.Printf("7 -> %s\n", val)
	} else {
		fmt.Println("7 is unset")
	}

	println("------")

	// arena-backed container for pointer-free values
	arena := alloc.NewArena(0)
	nums := sparsevec.WithCapacityIn[int](8, arena)
	for i := 0; i < 24; i++ {
		nums.Set(i*i, i)
	}
	fmt.Printf("len: %d, live arena blocks: %d\n", nums.Len(), arena.Live())

	nums.Free()
	fmt.Printf("after Free: live arena blocks: %d\n", arena.Live())
	arena.Release()
}
