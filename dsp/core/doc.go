// Package core provides shared configuration and small numeric helpers used
// across the toolkit. All processing packages accept raw []float64 slices;
// core carries the common sample-rate/block-size configuration and the
// comparison and buffer utilities they share.
package core
