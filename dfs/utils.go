// SPDX-License-Identifier: MIT

package dfs

import "cmp"

// MinimalRotation returns the lexicographically minimal rotation of s as a
// new slice, using Booth's algorithm.
// Time Complexity: O(n).
func MinimalRotation[V cmp.Ordered](s []V) []V {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]V, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]V(nil), doubled[k:k+n]...)
}
