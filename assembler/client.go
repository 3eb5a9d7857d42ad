// Package assembler is the client for the remote transaction assembler:
// it compiles contract scripts to spendable addresses and coordinates
// funding and submission of assembled transactions.
package assembler

import (
	"context"
	"fmt"
	"github.com/arkadda/seri/ghttp"
	"github.com/pkg/errors"
)

// ErrUnavailable covers both transport failures and responses carrying
// no follow identifier. There is no local fallback compiler and no
// retry; callers see one descriptive failure.
var ErrUnavailable = errors.New("could not contact the assembler service")

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

// Compile sends a contract script to the service and returns the
// pay-to-script address it compiles to. Compilation is deterministic:
// identical scripts yield identical addresses.
func (c *Client) Compile(ctx context.Context, script string) (string, error) {
	res := new(compileRes)
	err := c.http.DoPostJSON(ctx, c.path("compile"), script, res)
	if err != nil {
		return "", errors.Wrap(ErrUnavailable, err.Error())
	}
	if res.Address == "" {
		return "", errors.Wrap(ErrUnavailable, "empty compile result")
	}
	return res.Address, nil
}

// Follow registers a funding request. A response without an identifier
// is a failure, never a success with missing fields.
func (c *Client) Follow(ctx context.Context, req *FundRequest) (*FollowResult, error) {
	res := new(FollowResult)
	err := c.http.DoPostJSON(ctx, c.path("follow"), req, res)
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	if res.ID == "" {
		return nil, errors.Wrap(ErrUnavailable, "response carried no follow id")
	}
	return res, nil
}

func (c *Client) path(p string) string {
	return fmt.Sprintf("%s/%s", c.url, p)
}
