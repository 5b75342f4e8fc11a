// Package jobposting validates, normalizes and stores job postings.
//
// ValidateJobPosting is the pure validation pipeline. It walks a decoded
// request body field by field in a fixed order and stops at the first
// failure, returning a single *validator.ValidationError naming the field
// path (for example "teamMembers[1].email") and a message fit for end users.
// Only when every field passes is the salary range checked. The pipeline
// never performs I/O.
//
//	res := jobposting.ValidateJobPosting(body)
//	if !res.Valid {
//		return res.Err // 422 with res.Err.Field and res.Err.Message
//	}
//	posting := res.Value
//
// Service wraps the pipeline with persistence. Create and Update only
// reach Storage once validation succeeded:
//
//	svc := jobposting.NewService(jobposting.NewMongoStorage(db),
//		jobposting.WithLogger(log),
//	)
//	posting, err := svc.Create(ctx, body)
//
// Feedback, Preview and CheckPage render the live validation result as
// HTML for form pages. Every value except the sanitized description is
// escaped.
package jobposting
