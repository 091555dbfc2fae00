package base

import "fmt"

// Assertions guard internal invariants of OVO itself: an enum value outside
// its declared range, a cache entry built with mismatched slices, and so on.
// They must never fire in response to user input or toolchain behavior --
// those paths return an error instead.

func Assert(pred func() bool) {
	if !pred() {
		panic("ovo: failed assertion")
	}
}

func AssertErr(pred func() error) {
	if err := pred(); err != nil {
		panic(fmt.Errorf("ovo: failed assertion: %w", err))
	}
}

func AssertIn[T comparable](elt T, values ...T) {
	for _, x := range values {
		if x == elt {
			return
		}
	}
	panic(fmt.Sprintf("ovo: element %v is not in %v", elt, values))
}

// UnexpectedValue records a value outside an enum's declared range. It never
// aborts the process on its own -- callers decide whether to panic or return
// an error, matching ppb's split between "this can't happen" (panic)
// and "the caller gave us garbage" (error).
func UnexpectedValue(any interface{}) string {
	return fmt.Sprintf("ovo: unexpected value %#v", any)
}

func MakeUnexpectedValueError(dst interface{}, any interface{}) error {
	return fmt.Errorf("ovo: unexpected <%T> value: %#v", dst, any)
}

func UnexpectedValuePanic(any interface{}) {
	panic(UnexpectedValue(any))
}

func UnreachableCode() {
	panic("ovo: unreachable code")
}
