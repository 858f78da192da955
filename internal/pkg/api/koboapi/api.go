// Package koboapi provides bindings for the KoboToolbox REST API v2.
package koboapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/kobotools/kobotab/internal/pkg/http/client"
)

// Endpoints are well-known KoboToolbox installations,
// any other endpoint string is used as the host URL verbatim.
var Endpoints = map[string]string{
	"default":      "https://kf.kobotoolbox.org",
	"humanitarian": "https://kc.humanitarianresponse.info",
}

// Api talks to one KoboToolbox installation on behalf of one token.
type Api struct {
	host    string
	hostUrl string
	client  *client.Client
	logger  *zap.SugaredLogger
}

func NewApi(ctx context.Context, logger *zap.SugaredLogger, endpoint string, token string, verbose bool) *Api {
	if len(token) == 0 {
		panic(fmt.Errorf("api token is not set"))
	}

	host := ResolveEndpoint(endpoint)
	hostUrl := host + "/api/v2/"
	c := client.NewClient(ctx, logger, verbose).WithHostUrl(hostUrl)
	c.SetError(&Error{})
	c.SetHeader("Authorization", "Token "+token)
	return &Api{host: host, hostUrl: hostUrl, client: c, logger: logger}
}

// ResolveEndpoint translates an endpoint alias to the host URL.
func ResolveEndpoint(endpoint string) string {
	if endpoint == "" {
		endpoint = "default"
	}
	if url, found := Endpoints[endpoint]; found {
		endpoint = url
	}
	return strings.TrimRight(endpoint, "/")
}

func (a *Api) HostUrl() string {
	return a.hostUrl
}

// RestyClient is exposed for http mocking in tests.
func (a *Api) RestyClient() *resty.Client {
	return a.client.Resty()
}

// send executes a GET request and normalizes API errors.
func (a *Api) send(request *resty.Request, url string) (*resty.Response, error) {
	response, err := request.Get(url)
	if err != nil {
		return nil, err
	}
	if response.IsError() {
		if apiErr, ok := response.Error().(*Error); ok && apiErr != nil {
			apiErr.SetResponse(response)
			return nil, apiErr
		}
		return nil, fmt.Errorf(`request "%s" failed: %s`, url, response.Status())
	}
	return response, nil
}
