package httputil

import (
	"io"
	"net/http"
)

// Put issues a PUT request the way http.Post does for POST, since the
// standard library offers no helper for it.
func Put(url string, bodyType string, body io.Reader) (resp *http.Response, err error) {
	req, err := http.NewRequest("PUT", url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", bodyType)
	return http.DefaultClient.Do(req)
}
