// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitarray

import "fmt"

// Slice describes a half-open, strided index range over a BitArray,
// mirroring the Python-style slice semantics the container surface is
// built on: Start/Stop are optional (nil means "use the direction's
// natural default", exactly like Python's `a[::-1]`) and negative
// values wrap from the end. Step defaults to 1 when HasStep is false;
// an explicit Step of zero is always an error.
type Slice struct {
	Start, Stop *int
	Step        int
	HasStep     bool
}

// resolve normalizes s against a sequence of length n, returning
// concrete (start, stop, step) bounds plus the number of elements the
// slice selects. It implements the same clamp-and-wrap rules as
// Python's slice.indices().
func (s Slice) resolve(n int) (start, stop, step, length int, err error) {
	step = 1
	if s.HasStep {
		step = s.Step
	}
	if step == 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: slice step cannot be zero", ErrBadValue)
	}

	defStart, defStop := 0, n
	if step < 0 {
		defStart, defStop = n-1, -1
	}

	start = defStart
	if s.Start != nil {
		start = normalizeSliceIndex(*s.Start, n, step)
	}
	stop = defStop
	if s.Stop != nil {
		stop = normalizeSliceIndex(*s.Stop, n, step)
	}

	return start, stop, step, sliceLength(start, stop, step), nil
}

func normalizeSliceIndex(idx, n, step int) int {
	if idx < 0 {
		idx += n
		if idx < 0 {
			if step > 0 {
				return 0
			}
			return -1
		}
		return idx
	}
	if idx >= n {
		if step > 0 {
			return n
		}
		return n - 1
	}
	return idx
}

// sliceLength returns ceil(max(0, signed span) / |step|), the number
// of elements a resolved (start, stop, step) triple selects.
func sliceLength(start, stop, step int) int {
	if step > 0 {
		if stop <= start {
			return 0
		}
		return (stop-start+step-1) / step
	}
	if stop >= start {
		return 0
	}
	negStep := -step
	return (start-stop+negStep-1) / negStep
}

// toAscending rewrites a resolved (start, stop, step) triple with a
// negative step into an equivalent positive-step triple selecting the
// same set of indices (in the opposite order). Used by operations like
// Count and DelSlice, where the visitation order of an extended slice
// doesn't matter but a single ascending, half-open range is much
// simpler to feed into the region engine's fast paths.
func toAscending(start, stop, step, length int) (nStart, nStop, nStep int) {
	if step > 0 || length == 0 {
		return start, stop, step
	}
	nStep = -step
	nStart = start + (length-1)*step
	nStop = start - step
	return nStart, nStop, nStep
}
