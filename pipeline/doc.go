// Package pipeline fits and applies category encoders over Apache Arrow data.
//
// An Estimator is built from a Config listing the column bindings. Fit reads an
// arrow.Table, fits every bound column in a single pass over its chunks and returns a
// Transformer. The Transformer appends one nullable int64 index column per binding to
// each record it transforms, and can be saved to and loaded from a JSON model file
// holding the serialized encoder of every column.
//
//	est, err := pipeline.NewEstimator(cfg)
//	if err != nil {
//	    return err
//	}
//	tr, err := est.Fit(ctx, table)
//	if err != nil {
//	    return err
//	}
//	out, err := tr.Transform(record)
//	if err != nil {
//	    return err
//	}
//	defer out.Release()
//
// Null input values are skipped during fit and produce null outputs.
package pipeline
