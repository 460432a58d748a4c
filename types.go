package aiguard

// Service identifies the Pangea endpoint family a request is routed to.
type Service string

const (
	// ServiceAIGuard is the AI Guard text-analysis service.
	ServiceAIGuard Service = "aiguard"
	// ServiceAIDR is the AI Detection & Response service. Payloads sent to it
	// are enriched with default AIDR event metadata before posting.
	ServiceAIDR Service = "aidr"
)

// String returns the string representation of the service.
func (s Service) String() string {
	return string(s)
}

// RequestStatus is the status of an asynchronous API request as reported by
// the "status" field of the job-status response.
//
// The API may introduce statuses beyond the ones named here, so treat the set
// as open: Poll considers anything other than StatusAccepted and StatusSuccess
// a terminal failure.
type RequestStatus string

const (
	// StatusUnknown means the response carried no readable status field.
	StatusUnknown RequestStatus = ""
	// StatusAccepted means the request is queued and still being processed.
	StatusAccepted RequestStatus = "Accepted"
	// StatusSuccess means the request completed and the results are available.
	StatusSuccess RequestStatus = "Success"
)

// String returns the string representation of the request status.
func (s RequestStatus) String() string {
	return string(s)
}

// Terminal reports whether the status ends a polling loop. Every status other
// than StatusAccepted is terminal.
func (s RequestStatus) Terminal() bool {
	return s != StatusAccepted
}
