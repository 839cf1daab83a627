// Package internal holds iterator helpers shared by the packages of this module.
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single
// iterator sequence. Nil sequences are skipped.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Convert maps the values of a dual-return iterator, dropping the
// pairs that convert rejects.
func IterSeq2Convert[K any, V1 any, V2 any](seq iter.Seq2[K, V1], convert func(K, V1) (V2, bool)) iter.Seq2[K, V2] {
	return func(yield func(K, V2) bool) {
		if seq == nil {
			return
		}
		for key, val := range seq {
			out, ok := convert(key, val)
			if !ok {
				continue
			}
			if !yield(key, out) {
				return
			}
		}
	}
}
