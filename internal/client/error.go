package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a failed API call. Detail carries the server-supplied message when
// the response body had one; Error() falls back to a generic message so the
// console never renders an empty banner.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed (status %d)", e.Status)
}

func errorFromResponse(resp *http.Response) *Error {
	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &Error{Status: resp.StatusCode, Detail: body.Detail}
}
