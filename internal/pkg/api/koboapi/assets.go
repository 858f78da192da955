package koboapi

import (
	"fmt"

	"github.com/kobotools/kobotab/internal/pkg/model"
)

// assetsPage is the paginated envelope of the assets endpoint.
type assetsPage struct {
	Count    int            `json:"count"`
	Next     string         `json:"next"`
	Previous string         `json:"previous"`
	Results  []*model.Asset `json:"results"`
}

// ListAssets returns all assets of the token owner.
func (a *Api) ListAssets() ([]*model.Asset, error) {
	page := &assetsPage{}
	if _, err := a.send(a.client.R().SetResult(page), "assets.json"); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// ListUIDs returns asset names mapped to their UIDs.
func (a *Api) ListUIDs() (map[string]string, error) {
	assets, err := a.ListAssets()
	if err != nil {
		return nil, err
	}
	uids := make(map[string]string, len(assets))
	for _, asset := range assets {
		uids[asset.Name] = asset.Uid
	}
	return uids, nil
}

// GetAsset returns the detailed asset, including the form content.
func (a *Api) GetAsset(uid string) (*model.Asset, error) {
	asset := &model.Asset{}
	url := fmt.Sprintf("assets/%s.json", uid)
	if _, err := a.send(a.client.R().SetResult(asset), url); err != nil {
		return nil, err
	}
	return asset, nil
}
