package monotonic_test

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/staircase/pkg/monotonic"
	"go.llib.dev/staircase/pkg/pullkit"
)

func ExampleSeq() {
	for v := range monotonic.Seq(slices.Values([]int{1, 3, 4, 3, 5, 1, 2, 3})) {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 3
	// 4
	// 5
}

func ExampleSlice() {
	fmt.Println(monotonic.Slice([]string{"a", "c", "b", "d"}))
	// Output: [a c d]
}

func TestSeq(t *testing.T) {
	s := testcase.NewSpec(t)

	input := testcase.Let(s, func(t *testcase.T) []int {
		return randomInts(t)
	})
	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[int] {
		return monotonic.Seq(slices.Values(input.Get(t)))
	})

	s.Then("it yields the same values as the pull based Filter", func(t *testcase.T) {
		exp := collect[int](t, monotonic.New(pullkit.Slice(input.Get(t))))
		got := iterkit.Collect(subject.Get(t))
		assert.Equal(t, len(exp), len(got))
		for i := range exp {
			assert.Equal(t, exp[i], got[i])
		}
	})

	s.Then("it can be iterated multiple times", func(t *testcase.T) {
		first := iterkit.Collect(subject.Get(t))
		second := iterkit.Collect(subject.Get(t))
		assert.Equal(t, first, second)
	})

	s.When("the iteration is stopped early", func(s *testcase.Spec) {
		input.LetValue(s, []int{1, 2, 3, 4})

		s.Then("only the requested values are yielded", func(t *testcase.T) {
			got := iterkit.Collect(iterkit.Head(subject.Get(t), 2))
			assert.Equal(t, []int{1, 2}, got)
		})
	})

	s.When("the source is nil", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) iter.Seq[int] {
			return monotonic.Seq[int](nil)
		})

		s.Then("nothing is yielded", func(t *testcase.T) {
			assert.Empty(t, iterkit.Collect(subject.Get(t)))
		})
	})
}

func TestSeqFunc(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("discarded values are reported with the value they lost against", func(t *testcase.T) {
		type pair struct{ kept, dropped int }
		var discarded []pair
		seq := monotonic.SeqFunc(slices.Values([]int{1, 1, 2}), monotonic.Increasing[int],
			monotonic.OnDiscard(func(kept, dropped int) {
				discarded = append(discarded, pair{kept: kept, dropped: dropped})
			}))

		assert.Equal(t, []int{1, 2}, iterkit.Collect(seq))
		assert.Equal(t, []pair{{kept: 1, dropped: 1}}, discarded)
	})

	s.Test("discards are reported after the kept element was yielded", func(t *testcase.T) {
		var events []string
		seq := monotonic.SeqFunc(slices.Values([]int{2, 1, 3}), monotonic.NonDecreasing[int],
			monotonic.OnDiscard(func(kept, dropped int) {
				events = append(events, fmt.Sprintf("drop %d", dropped))
			}))
		for v := range seq {
			events = append(events, fmt.Sprintf("yield %d", v))
		}
		assert.Equal(t, []string{"yield 2", "drop 1", "yield 3"}, events)
	})

	s.Test("nil keep relation is rejected", func(t *testcase.T) {
		assert.Panic(t, func() { monotonic.SeqFunc[int](slices.Values([]int{1}), nil) })
	})
}

func TestErrSeq(t *testing.T) {
	s := testcase.NewSpec(t)

	expErr := testcase.Let(s, func(t *testcase.T) error {
		return t.Random.Error()
	})
	source := testcase.Let(s, func(t *testcase.T) iter.Seq2[int, error] {
		return func(yield func(int, error) bool) {
			for _, n := range []int{2, 1} {
				if !yield(n, nil) {
					return
				}
			}
			if !yield(-1, expErr.Get(t)) {
				return
			}
			yield(3, nil)
		}
	})
	subject := testcase.Let(s, func(t *testcase.T) iter.Seq2[int, error] {
		return monotonic.ErrSeq(source.Get(t), monotonic.NonDecreasing[int])
	})

	s.Then("errors are passed through and the values paired with them are not compared", func(t *testcase.T) {
		vs, err := iterkit.CollectErr(subject.Get(t))
		assert.Equal(t, []int{2, 3}, vs)
		assert.ErrorIs(t, expErr.Get(t), err)
	})

	s.Then("the iteration can be stopped at the error", func(t *testcase.T) {
		var got []int
		for v, err := range subject.Get(t) {
			if err != nil {
				break
			}
			got = append(got, v)
		}
		assert.Equal(t, []int{2}, got)
	})
}

func TestSlice(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the input is not modified", func(t *testcase.T) {
		in := []int{3, 1, 2, 4}
		og := slices.Clone(in)
		assert.Equal(t, []int{3, 4}, monotonic.Slice(in))
		assert.Equal(t, og, in)
	})

	s.Test("empty input gives empty output", func(t *testcase.T) {
		assert.Empty(t, monotonic.Slice[int](nil))
	})

	s.Test("custom relation", func(t *testcase.T) {
		people := []Person{{"Jane", 20}, {"John", 18}, {"Jill", 30}, {"Jack", 30}}
		got := monotonic.SliceFunc(people, monotonic.ByKey(byAge))
		assert.Equal(t, []Person{{"Jane", 20}, {"Jill", 30}, {"Jack", 30}}, got)
	})
}
