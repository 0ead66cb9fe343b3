package clients

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"
)

const timeout = time.Second * 15

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(url string, headers http.Header) (statusCode int, respBody []byte, err error)
	Post(url string, body []byte, headers http.Header) (statusCode int, respBody []byte, err error)
	Delete(url string, headers http.Header) (statusCode int, respBody []byte, err error)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClientAdapter) Get(url string, headers http.Header) (int, []byte, error) {
	return h.request(http.MethodGet, url, nil, headers)
}

func (h *HTTPClientAdapter) Post(url string, body []byte, headers http.Header) (int, []byte, error) {
	return h.request(http.MethodPost, url, body, headers)
}

func (h *HTTPClientAdapter) Delete(url string, headers http.Header) (int, []byte, error) {
	return h.request(http.MethodDelete, url, nil, headers)
}

func (h *HTTPClientAdapter) request(method, url string, body []byte, headers http.Header) (statusCode int, respBody []byte, err error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return
	}
	if headers != nil {
		req.Header = headers
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode

	return
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: timeout},
		},
	}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) Get(url string, headers http.Header) (int, []byte, error) {
	return h.client.Get(url, headers)
}

func (h *HTTPClient) Post(url string, body []byte, headers http.Header) (int, []byte, error) {
	return h.client.Post(url, body, headers)
}

func (h *HTTPClient) Delete(url string, headers http.Header) (int, []byte, error) {
	return h.client.Delete(url, headers)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
