package slice_test

import (
	"fmt"

	"goslice/slice"
)

func ExampleView() {
	buf := []int{1, 2, 3, 4, 5}
	v := slice.MustNew(buf, 1, 3)
	fmt.Println(v.Len(), v)

	// the view sees writes to the buffer
	buf[2] = 30
	fmt.Println(v.Join("-"))
	// Output:
	// 3 [2 3 4]
	// 2-30-4
}

func ExampleView_Slice() {
	v := slice.MustFrom([]string{"a", "b", "c", "d", "e"})
	child, err := v.Slice(1, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(child)
	// Output: [b c]
}

func ExampleMap() {
	v := slice.MustNew([]int{1, 2, 3, 4, 5}, 1, 3)
	doubled := slice.Map(v, func(x, _ int) int { return x * 2 })
	fmt.Println(doubled)
	// Output: [4 6 8]
}

func ExampleReduce() {
	v := slice.MustNew([]int{1, 2, 3, 4, 5}, 1, 3)
	sum := slice.Reduce(v, func(acc, x, _ int, _ slice.View[int]) int { return acc + x }, 0)
	fmt.Println(sum)
	// Output: 9
}
