package seqtree

import "fmt"

func ExampleNewAddSum() {
	t := NewAddSum()
	for i, v := range []int64{3, 1, 4, 1, 5, 9} {
		t.Insert(i, v)
	}
	fmt.Println(t.Prod(1, 4))
	t.Apply(0, 3, 10)
	fmt.Println(t.Prod(1, 4))
	// Output:
	// 6
	// 26
}

func ExampleTree_Clone() {
	v1 := NewAddSum()
	for i := 0; i < 4; i++ {
		v1.Insert(i, int64(i+1))
	}
	v2 := v1.Clone()
	v2.Apply(0, 4, 100)
	v2.Remove(0)
	fmt.Println(v1)
	fmt.Println(v2)
	// Output:
	// [1 2 3 4]
	// [102 103 104]
}

func ExampleTree_Reverse() {
	t := NewAssignConcat()
	for i, r := range "garland" {
		t.Insert(i, r)
	}
	t.Reverse()
	fmt.Println(t.Prod(0, t.Len()))
	// Output:
	// dnalrag
}

func ExampleTree_Split() {
	t := NewAddSum()
	for i := 0; i < 6; i++ {
		t.Insert(i, int64(i))
	}
	left, right := t.Split(2)
	fmt.Println(left, right)
	fmt.Println(right.Merge(left))
	// Output:
	// [0 1] [2 3 4 5]
	// [2 3 4 5 0 1]
}
