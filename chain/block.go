package chain

import (
	"github.com/arkadda/seri/gjson"
)

// BlockHeader is the slice of a chain tip the auction protocol cares
// about: a monotonically increasing height and a millisecond timestamp.
type BlockHeader struct {
	ID        gjson.ByteString `json:"id"`
	Height    int64            `json:"height"`
	Timestamp int64            `json:"timestamp"`
}
