package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewMockForTests returns a *Store backed by an in-memory fake HTTP transport.
// Only GetObject and PutObject are implemented.
func NewMockForTests() *Store {
	s, _ := newMock("")
	return s
}

// MockTransport is the fake transport behind NewMockForTests; exposed so tests
// can inspect stored objects and inject failures.
type MockTransport struct {
	mu      sync.Mutex
	state   map[string]mockObj
	failPut bool
}

type mockObj struct {
	body        []byte
	contentType string
}

func newMock(prefix string) (*Store, *MockTransport) {
	rt := &MockTransport{state: make(map[string]mockObj)}
	cfg, _ := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: rt}
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String("https://mock.s3.local")
		o.RetryMaxAttempts = 1
	})
	return &Store{client: client, bucket: "mock-bucket", prefix: prefix}, rt
}

// Object returns the stored body for an object key.
func (m *MockTransport) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.state[key]
	return o.body, ok
}

// FailPuts makes PutObject answer 500.
func (m *MockTransport) FailPuts(fail bool) {
	m.mu.Lock()
	m.failPut = fail
	m.mu.Unlock()
}

func empty(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}
}

// RoundTrip implements http.RoundTripper.
func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	switch req.Method {
	case http.MethodPut:
		if m.failPut {
			return empty(http.StatusInternalServerError), nil
		}
		body, _ := io.ReadAll(req.Body)
		if dec, ok := decodeChunkedLite(body); ok { // handle aws-chunked encoding
			body = dec
		}
		m.state[key] = mockObj{body: body, contentType: req.Header.Get("Content-Type")}
		resp := empty(http.StatusOK)
		resp.Header.Set("ETag", "\"etag\"")
		return resp, nil
	case http.MethodGet:
		st, ok := m.state[key]
		if !ok {
			return empty(http.StatusNotFound), nil
		}
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(st.body)), Header: http.Header{
			"Content-Length": {fmt.Sprintf("%d", len(st.body))},
			"Content-Type":   {st.contentType},
			"Last-Modified":  {time.Now().UTC().Format(http.TimeFormat)},
			"ETag":           {"\"etag\""},
		}}, nil
	}
	return empty(http.StatusNotImplemented), nil
}

// decodeChunkedLite decodes a minimal single-chunk aws-chunked style payload: <hex>\r\n<body>\r\n0\r\n...
func decodeChunkedLite(b []byte) ([]byte, bool) {
	s := string(b)
	parts := strings.Split(s, "\r\n")
	if len(parts) < 3 {
		return nil, false
	}
	sz, perr := parseHex(parts[0])
	if perr != nil || int64(len(parts[1])) != sz || parts[2] != "0" {
		return nil, false
	}
	return []byte(parts[1]), true
}

func parseHex(h string) (int64, error) {
	var v int64
	if h == "" {
		return 0, fmt.Errorf("empty hex")
	}
	for _, c := range h {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v += int64(c - '0')
		case c >= 'a' && c <= 'f':
			v += int64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int64(c-'A') + 10
		default:
			return 0, fmt.Errorf("invalid hex")
		}
	}
	return v, nil
}
