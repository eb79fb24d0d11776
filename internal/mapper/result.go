package mapper

// Result is the per-profile outcome a batch driver aggregates into its
// processed/failed summary. Err means the profile failed hard (nothing was
// persisted for it); Warnings are non-fatal mapping problems, such as
// advisees without a numeric id, that need operator attention.
type Result struct {
	ProfileID int64
	Err       error
	Warnings  []error
}

func (r Result) Failed() bool {
	return r.Err != nil
}
