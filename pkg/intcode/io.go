package intcode

// Input supplies the value for an IN instruction. It may block until a value
// is available. A returned error aborts the run.
type Input func() (int64, error)

// Output consumes the value of an OUT instruction. It may block until the
// value has been taken. A returned error aborts the run.
type Output func(int64) error

// Values returns an Input that yields vs in order, then fails with
// ErrInputExhausted.
func Values(vs ...int64) Input {
	queue := append([]int64(nil), vs...)
	return func() (int64, error) {
		if len(queue) == 0 {
			return 0, ErrInputExhausted
		}
		v := queue[0]
		queue = queue[1:]
		return v, nil
	}
}

// Constant returns an Input that always yields v.
func Constant(v int64) Input {
	return func() (int64, error) {
		return v, nil
	}
}

// Collect returns an Output that appends every value to dst.
func Collect(dst *[]int64) Output {
	return func(v int64) error {
		*dst = append(*dst, v)
		return nil
	}
}

// Discard is an Output that drops every value.
func Discard(int64) error {
	return nil
}
