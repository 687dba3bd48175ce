// Package column binds category encoders to named input columns.
//
// A Column is the type-erased unit a host works with: it is created from a Binding
// (output name, source column name, source type), fitted once from a stream of values
// or loaded from a blob, and then encodes values to int64 category indexes.
//
//	col, err := column.New(column.Binding{Name: "color_idx", Source: "color", Type: format.SourceString})
//	if err != nil {
//	    return err // unsupported type, reported before any data is read
//	}
//	if err := col.Fit(column.NewSliceSource([]any{"red", "blue"})); err != nil {
//	    return err
//	}
//	idx, err := col.EncodeAny("blue") // 1
//
// Columns move through Unfit, Fitting and Fitted. A failed fit returns the column to
// Unfit; encoding or saving before Fitted fails with ErrInvalidState; a fitted column
// cannot be fitted or loaded again.
//
// Columns are safe for concurrent use. Concurrent Fit calls on the same column are
// rejected rather than serialized.
package column
