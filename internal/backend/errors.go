package backend

import "fmt"

const detailNotSuccessful = "backend reported failure"

// TransportError means the request did not produce a successful response:
// the exchange itself failed, the status was not 2xx, or the body said success=false.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

// Detail is the user-facing description of the failure. It is derived from
// the transport outcome only; the response body is never consulted.
func (e *TransportError) Detail() string {
	switch {
	case e.StatusCode != 0 && (e.StatusCode < 200 || e.StatusCode > 299):
		return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return detailNotSuccessful
	}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Detail())
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
