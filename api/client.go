package api

import (
	"context"
	"fmt"
	"github.com/arkadda/seri/auction"
	"github.com/arkadda/seri/ghttp"
)

type Client struct {
	url    string
	apiKey string
}

func NewClient(url string, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
	}
}

func (c *Client) Status(ctx context.Context) (*StatusRes, error) {
	res := new(StatusRes)
	err := c.doGet(ctx, "api/v1/status", res)
	return res, err
}

func (c *Client) ListAuctions(ctx context.Context) (*ListAuctionsRes, error) {
	res := new(ListAuctionsRes)
	err := c.doGet(ctx, "api/v1/auctions", res)
	return res, err
}

func (c *Client) CreateAuction(ctx context.Context, req *CreateAuctionReq) (*auction.Result, error) {
	res := new(auction.Result)
	err := c.doPost(ctx, "api/v1/auctions", req, res)
	return res, err
}

func (c *Client) CreateBid(ctx context.Context, req *CreateBidReq) (*auction.Result, error) {
	res := new(auction.Result)
	err := c.doPost(ctx, "api/v1/bids", req, res)
	return res, err
}

func (c *Client) ListBids(ctx context.Context) (*ListBidsRes, error) {
	res := new(ListBidsRes)
	err := c.doGet(ctx, "api/v1/bids", res)
	return res, err
}

func (c *Client) doGet(ctx context.Context, path string, resObj interface{}) error {
	return ghttp.DefaultClient.DoGetJSON(
		ctx,
		fmt.Sprintf("%s/%s", c.url, path),
		resObj,
		ghttp.WithHeader("X-API-Key", c.apiKey),
	)
}

func (c *Client) doPost(ctx context.Context, path string, body interface{}, resObj interface{}) error {
	return ghttp.DefaultClient.DoPostJSON(
		ctx,
		fmt.Sprintf("%s/%s", c.url, path),
		body,
		resObj,
		ghttp.WithHeader("X-API-Key", c.apiKey),
	)
}
