package httpx

import (
	"fmt"
	"net/http"
)

// AuthBasicRoundTripper sets HTTP basic credentials on every outgoing request.
type AuthBasicRoundTripper struct {
	next     http.RoundTripper
	username string
	password string
}

func NewAuthBasicRoundTripper(
	next http.RoundTripper,
	username string,
	password string,
) AuthBasicRoundTripper {
	return AuthBasicRoundTripper{
		next:     next,
		username: username,
		password: password,
	}
}

func (rt AuthBasicRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper must not modify the caller's request.
	req = req.Clone(req.Context())
	req.SetBasicAuth(rt.username, rt.password)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
