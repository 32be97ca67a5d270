package readability

import "errors"

// ErrTooManyDocuments is returned by AnalyzeAll when the batch exceeds the
// configured limit.
var ErrTooManyDocuments = errors.New("readability: too many documents in batch")
