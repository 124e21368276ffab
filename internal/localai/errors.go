package localai

// ErrorPrefix starts every failure text returned to tool callers.
const ErrorPrefix = "Error connecting to local AI server: "

// DownstreamCallFailed covers every way the outbound call can fail:
// client setup, network, auth, service-side and malformed responses.
type DownstreamCallFailed struct {
	Description string
	Err         error
}

func (e *DownstreamCallFailed) Error() string {
	return ErrorPrefix + e.Description
}

func (e *DownstreamCallFailed) Unwrap() error {
	return e.Err
}

func downstreamFailure(err error) *DownstreamCallFailed {
	desc := err.Error()
	if desc == "" {
		desc = "unknown error"
	}
	return &DownstreamCallFailed{Description: desc, Err: err}
}
