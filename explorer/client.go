// Package explorer is a thin read-only client for the chain explorer.
// The auction protocol only needs the current tip and box lookups;
// everything else about chain state stays the explorer's problem.
package explorer

import (
	"context"
	"fmt"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/ghttp"
	"github.com/pkg/errors"
)

type Client struct {
	url  string
	http *ghttp.HTTPClient
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: ghttp.DefaultClient,
	}
}

type itemsRes struct {
	Items []*chain.BlockHeader `json:"items"`
	Total int                  `json:"total"`
}

type boxItemsRes struct {
	Items []*chain.Box `json:"items"`
	Total int          `json:"total"`
}

// CurrentBlock returns the chain tip's header.
func (c *Client) CurrentBlock(ctx context.Context) (*chain.BlockHeader, error) {
	res := new(itemsRes)
	if err := c.doGet(ctx, "api/v1/blocks?limit=1", res); err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, errors.New("explorer returned no blocks")
	}
	return res.Items[0], nil
}

func (c *Client) GetBox(ctx context.Context, boxID string) (*chain.Box, error) {
	box := new(chain.Box)
	if err := c.doGet(ctx, fmt.Sprintf("api/v1/boxes/%s", boxID), box); err != nil {
		return nil, errors.Wrapf(err, "error fetching box %s", boxID)
	}
	return box, nil
}

func (c *Client) UnspentBoxesByAddress(ctx context.Context, address string) ([]*chain.Box, error) {
	res := new(boxItemsRes)
	if err := c.doGet(ctx, fmt.Sprintf("api/v1/boxes/unspent/byAddress/%s", address), res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (c *Client) doGet(ctx context.Context, path string, resObj interface{}) error {
	return c.http.DoGetJSON(ctx, fmt.Sprintf("%s/%s", c.url, path), resObj)
}
