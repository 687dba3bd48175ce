// Package category implements the streaming categorical encoder.
//
// A fit makes one forward pass over a column, assigning every distinct value a dense
// index in first-seen order. The resulting Table is immutable; an Encoder wraps it and
// maps values to indexes with a configurable policy for values that were never seen
// during the fit.
//
// # Fitting
//
// Fit drives an Accumulator from a Source until the source ends with io.EOF or the
// accumulator reports StatusComplete (a category cap was reached):
//
//	enc, err := category.FitSlice([]string{"red", "blue", "red", "green"})
//	if err != nil {
//	    return err
//	}
//	enc.Encode("blue")   // 1
//	enc.Encode("purple") // 3, the reserved unseen index
//
// Hosts that push values instead of pulling can drive an Accumulator directly:
//
//	acc, _ := category.NewAccumulator[int64](category.WithMaxCategories(1000))
//	defer acc.Release()
//	for _, v := range batch {
//	    if acc.Ingest(v) != category.StatusContinue {
//	        break
//	    }
//	}
//	if _, err := acc.Finalize(); err != nil {
//	    return err
//	}
//	table, _ := acc.Table()
//
// # Equality
//
// Membership uses Go ==: strings compare byte-wise and case-sensitively, and +0 and -0
// are the same float category. NaN values are matched by their exact bit pattern, so a
// repeated NaN is one category while NaNs with different payloads stay distinct.
//
// # Unseen Values
//
// format.UnseenReserved (the default) maps unseen values to Len(), one past the last
// category. format.UnseenSentinel maps them to SentinelIndex (-1) and format.UnseenZero
// maps them to index 0.
//
// Tables and Encoders are safe for concurrent use. Accumulators are not.
package category
