package registrar

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"coursecatalog-backend/lib/restyutil"
)

const searchEndpoint = "/course-search"

// StatusError is a non-2xx response from the catalog search endpoint. It
// is fatal to a capture run: no retry is attempted.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog search returned %s: %s", e.Status, e.Body)
}

type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	BaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, tracer, instrumentOutput)

	return &Client{Http: client}, nil
}

// Query narrows a catalog search to one term and school, and optionally
// to a single department within that school.
type Query struct {
	Term       string
	School     string
	Department string
}

// Search performs the form-encoded catalog search POST and returns the
// raw results page.
func (c *Client) Search(ctx context.Context, q Query) ([]byte, error) {
	form := map[string]string{
		"term":   q.Term,
		"school": q.School,
	}
	if q.Department != "" {
		form["department"] = q.Department
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(searchEndpoint)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, &StatusError{
			Code:   res.StatusCode(),
			Status: res.Status(),
			Body:   string(res.Body()),
		}
	}
	return res.Body(), nil
}
