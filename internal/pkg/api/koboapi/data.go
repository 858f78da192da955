package koboapi

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/kobotools/kobotab/internal/pkg/model"
)

// SubmissionOptions are passed through to the data endpoint as query params.
// Query wins over SubmittedAfter when both are set.
// Zero Start/Limit means "not set".
type SubmissionOptions struct {
	Query          string
	Start          int
	Limit          int
	SubmittedAfter string
}

// submissionsPage is the paginated envelope of the data endpoint.
type submissionsPage struct {
	Count    int                `json:"count"`
	Next     string             `json:"next"`
	Previous string             `json:"previous"`
	Results  []model.Submission `json:"results"`
}

// GetSubmissions returns the submissions of the asset, in API order.
func (a *Api) GetSubmissions(uid string, opts SubmissionOptions) ([]model.Submission, error) {
	request := a.client.R()

	switch {
	case opts.Query != "":
		if opts.SubmittedAfter != "" {
			a.logger.Debugf(`Ignoring "submitted after" because a query is specified.`)
		}
		request.SetQueryParam("query", opts.Query)
	case opts.SubmittedAfter != "":
		request.SetQueryParam("query", fmt.Sprintf(`{"_submission_time": {"$gt": "%s"}}`, opts.SubmittedAfter))
	}
	if opts.Start > 0 {
		request.SetQueryParam("start", cast.ToString(opts.Start))
	}
	if opts.Limit > 0 {
		request.SetQueryParam("limit", cast.ToString(opts.Limit))
	}

	page := &submissionsPage{}
	url := fmt.Sprintf("assets/%s/data.json", uid)
	if _, err := a.send(request.SetResult(page), url); err != nil {
		return nil, err
	}
	return page.Results, nil
}
