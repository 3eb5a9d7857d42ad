package cmd

import (
	"fmt"
	"github.com/arkadda/seri"
	"github.com/arkadda/seri/api"
)

func apiClient() *api.Client {
	return api.NewClient(
		fmt.Sprintf("http://localhost:%d", seri.Config.Network.APIPort),
		cfg.APIKey,
	)
}
