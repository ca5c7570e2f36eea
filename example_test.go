package chunk_test

import (
	"fmt"
	"iter"

	chunk "github.com/achille-roussel/chunk-go"
)

func ExampleChunk() {
	sequence := func(min, max int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := min; i < max; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}

	chunks := chunk.Chunk(2, sequence(1, 6)) // 1,2,3,4,5

	for group := range chunks.Seq() {
		fmt.Println(group)
	}
	for value := range chunks.Remainder().Seq() {
		fmt.Println(value)
	}

	// Output:
	// [1 2]
	// [3 4]
	// 5
}

func ExampleChunks_Remainder() {
	sequence := func(min, max int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := min; i < max; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}

	chunks := chunk.Chunk(4, sequence(1, 7)) // 1,2,3,4,5,6

	group, _ := chunks.Next()
	fmt.Println(group)

	// The last two elements cannot fill a group.
	_, ok := chunks.Next()
	fmt.Println(ok)

	remainder := chunks.Remainder()
	fmt.Println(remainder.Len())
	for value := range remainder.Seq() {
		fmt.Println(value)
	}

	// Output:
	// [1 2 3 4]
	// false
	// 2
	// 5
	// 6
}
