package koboapi

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Error represents the KoboToolbox API error structure.
type Error struct {
	Detail   string `json:"detail"`
	response *resty.Response
}

func (e *Error) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = "unknown API error"
	}
	if e.response != nil {
		return fmt.Sprintf(`%s, method: "%s", url: "%s", httpCode: "%d"`, msg, e.response.Request.Method, e.response.Request.URL, e.StatusCode())
	}
	return msg
}

func (e *Error) SetResponse(response *resty.Response) {
	e.response = response
}

func (e *Error) StatusCode() int {
	if e.response == nil {
		return 0
	}
	return e.response.StatusCode()
}

func (e *Error) IsUnauthorized() bool {
	return e.StatusCode() == http.StatusUnauthorized
}
