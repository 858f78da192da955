package model

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Asset is a survey/form definition and the anchor of its submissions.
type Asset struct {
	Uid            string                 `json:"uid"`
	Name           string                 `json:"name"`
	AssetType      string                 `json:"asset_type,omitempty"`
	Url            string                 `json:"url,omitempty"`
	DateModified   string                 `json:"date_modified,omitempty"`
	DeploymentData int                    `json:"deployment__submission_count,omitempty"`
	Content        *orderedmap.OrderedMap `json:"content,omitempty"`
}

// Submission is one survey response, key order preserved from the API document.
type Submission = *orderedmap.OrderedMap
