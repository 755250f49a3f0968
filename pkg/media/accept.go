package media

import "net/http"

// AcceptHint returns the Accept header text to use as an encoding hint.
// The header is not parsed or validated here: resolution tolerates
// anything, and an absent header is simply no preference. A
// multi-valued list does not parse as one media type, so it falls back
// to JSON downstream; picking between alternatives by quality is out of
// scope.
func AcceptHint(r *http.Request) string {
	return r.Header.Get("Accept")
}
