package seri

import (
	"github.com/arkadda/seri/chain"
)

type config struct {
	Network *chain.Network
	Prefix  string
}

var Config = new(config)
