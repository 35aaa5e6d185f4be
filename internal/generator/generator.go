// Package generator derives deterministic field values from a record's seed index.
// Nothing here reads a clock or an entropy source: the same inputs always give the same output.
package generator

import (
	"strconv"
	"time"
)

// PickElement returns vocabulary[index mod len(vocabulary)].
// Negative indices wrap into range. It panics on an empty vocabulary.
func PickElement[T any](vocabulary []T, index int) T {
	n := len(vocabulary)
	if n == 0 {
		panic("generator: PickElement called with empty vocabulary")
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return vocabulary[i]
}

// LabelWithIndex returns "{label}-{index}".
func LabelWithIndex(label string, index int) string {
	return label + "-" + strconv.Itoa(index)
}

// OffsetDate returns base advanced by index hours.
// Callers capture base once per table build so spacing between records stays exact.
func OffsetDate(base time.Time, index int) time.Time {
	return base.Add(time.Duration(index) * time.Hour)
}
