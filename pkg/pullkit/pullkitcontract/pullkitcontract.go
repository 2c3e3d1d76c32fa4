package pullkitcontract

import (
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/staircase/pkg/pullkit"
)

// Iterator is the behavioural contract of a pullkit.Iterator.
//
// The Make function must return an iterator which has at least one value and no error.
func Iterator[T any](mk contract.Make[pullkit.Iterator[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) pullkit.Iterator[T] {
		itr := mk(t)
		t.Cleanup(func() { _ = itr.Close() })
		return itr
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		vs, err := iterkit.CollectPullIter(subject.Get(t))
		assert.NoError(t, err)
		assert.NotEmpty(t, vs)
	})

	s.Then("Next keeps reporting false once the iterator is exhausted", func(t *testcase.T) {
		itr := subject.Get(t)
		for itr.Next() {
		}
		assert.NoError(t, itr.Err())
		t.Random.Repeat(2, 5, func() {
			assert.False(t, itr.Next())
		})
	})

	s.Then("Value is repeatable without side effects", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.True(t, itr.Next())
		exp := itr.Value()
		t.Random.Repeat(2, 5, func() {
			assert.Equal(t, exp, itr.Value())
		})
	})

	s.Then("Close is idempotent", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.NoError(t, itr.Close())
		assert.NoError(t, itr.Close())
	})

	s.Then("Next reports false after Close", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.NoError(t, itr.Close())
		assert.False(t, itr.Next())
	})

	return s.AsSuite("pullkit.Iterator")
}
