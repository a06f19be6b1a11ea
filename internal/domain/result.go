package domain

// EndpointErrors pairs an endpoint with the number of error requests it served
type EndpointErrors struct {
	Endpoint string
	Count    int
}

// AnalysisResult holds the statistics produced by one pass over a log file
type AnalysisResult struct {
	Total     int              // valid entries
	Errors    int              // valid entries with an error status
	TopErrors []EndpointErrors // most erroring endpoints, count descending

	Lines   int // lines read, including blank ones
	Skipped int // lines dropped by decoding or validation
}

// NewAnalysisResult creates an empty result
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		TopErrors: []EndpointErrors{},
	}
}

// HasErrors reports whether any error request was seen
func (r *AnalysisResult) HasErrors() bool {
	return r.Errors > 0
}
