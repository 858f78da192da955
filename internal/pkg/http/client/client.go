// Package client wraps the resty HTTP client used for all API calls.
//
// There is deliberately no retry/backoff here, requests either succeed
// or surface their error to the caller.
package client

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/kobotools/kobotab/internal/pkg/build"
)

const (
	RequestTimeout  = 45 * time.Second
	HTTPTimeout     = 30 * time.Second
	IdleConnTimeout = 90 * time.Second
	KeepAlive       = 30 * time.Second
	MaxIdleConns    = 64
)

// Client - HTTP client.
type Client struct {
	parentCtx context.Context
	logger    *Logger
	resty     *resty.Client
}

func NewClient(ctx context.Context, logger *zap.SugaredLogger, verbose bool) *Client {
	c := &Client{}
	c.parentCtx = ctx
	c.logger = &Logger{logger}
	c.resty = createRestyClient(c.logger)
	setupLogs(c, verbose)
	return c
}

// WithHostUrl returns a copy of the client bound to the host URL.
func (c Client) WithHostUrl(hostUrl string) *Client {
	c.resty.SetBaseURL(hostUrl)
	return &c
}

func (c *Client) HostUrl() string {
	return c.resty.BaseURL
}

// R creates a request bound to the client context.
func (c *Client) R() *resty.Request {
	return c.resty.R().SetContext(c.parentCtx)
}

func (c *Client) Resty() *resty.Client {
	return c.resty
}

func (c *Client) SetHeader(header, value string) *Client {
	c.resty.SetHeader(header, value)
	return c
}

// SetError registers the type the API error body is decoded into.
func (c *Client) SetError(err any) *Client {
	c.resty.SetError(err)
	return c
}

func createRestyClient(logger *Logger) *resty.Client {
	r := resty.New()
	r.SetLogger(logger)
	r.SetHeader("User-Agent", fmt.Sprintf("kobotab/%s", build.BuildVersion))
	r.SetHeader("Accept", "application/json")
	r.SetTimeout(RequestTimeout)
	r.SetTransport(createTransport())
	return r
}

func createTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   HTTPTimeout,
		KeepAlive: KeepAlive,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          MaxIdleConns,
		MaxIdleConnsPerHost:   MaxIdleConns,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

func setupLogs(c *Client, verbose bool) {
	// Debug full request and response if verbose = true
	if verbose {
		c.resty.SetDebug(true)
		c.resty.SetDebugBodyLimit(2 * 1024)
		return
	}

	// Log only a simple message if verbose = false
	c.resty.OnAfterResponse(func(_ *resty.Client, response *resty.Response) error {
		if response.IsSuccess() {
			c.logger.Debugf("%s", responseToLog(response))
		}
		return nil
	})
	c.resty.OnError(func(request *resty.Request, err error) {
		if v, ok := err.(*resty.ResponseError); ok {
			c.logger.Errorf("%s", responseToLog(v.Response))
		} else {
			c.logger.Errorf("%s", requestToLog(request, err))
		}
	})
}

func requestToLog(req *resty.Request, err error) string {
	return fmt.Sprintf("%s %s | %s", req.Method, req.URL, err)
}

func responseToLog(res *resty.Response) string {
	req := res.Request
	return fmt.Sprintf("%s %s | %d | %s", req.Method, req.URL, res.StatusCode(), res.Time())
}
