// Package dataset loads labelled numeric samples from CSV into matrix values.
//
// The expected layout is one sample per record: an integer class label in the
// label column (the first column by default) and float features everywhere
// else, optionally preceded by a header record.
//
//	label,x1,x2
//	0,0.5,1.25
//	1,3,-2
//
// Features are exposed as a samples × features *matrix.Matrix; Batch returns
// the transposed features × samples layout consumed by layer.Network.
package dataset
