package client_test

import (
	"net/http"
	"testing"
)

func assertMethod(t *testing.T, response testResponse, method string) {
	if response.Method != method {
		t.Fatalf("expected request method to be '%s', got '%s'", method, response.Method)
	}
}

func assertPath(t *testing.T, response testResponse, path string) {
	if response.Path != path {
		t.Fatalf("expected request path to be '%s', got '%s'", path, response.Path)
	}
}

func assertHeader(t *testing.T, response testResponse, key, val string) {
	header := response.Header.Get(http.CanonicalHeaderKey(key))
	if header != val {
		t.Fatalf("expected request header %s to be '%s', got '%s'", key, val, header)
	}
}
