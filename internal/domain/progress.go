package domain

// UploadProgress reports bulk upload progress.
// Current is server-reported cumulative progress, never computed locally.
type UploadProgress struct {
	Current int
	Total   int
}

// Percent returns progress as a fraction in [0, 1]
func (p UploadProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Current) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// ProgressFunc reports bulk upload progress to the UI.
// Called once before the first request and once per server response.
type ProgressFunc func(UploadProgress)

// UploadResult summarizes a finished bulk upload
type UploadResult struct {
	Submitted int            // length of the input array
	Requests  int            // POSTs made
	Final     UploadProgress // progress from the terminating response
}
