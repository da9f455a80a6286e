package jsoncache

import "github.com/bnema/astro-impact/internal/adapters/neows"

// fileSchema is the on-disk cache document. Objects keep the NeoWs item shape and the
// timestamp is a local DDMMYYYYHHMM stamp.
type fileSchema struct {
	Objects   []neows.Object `json:"objecten"`
	Timestamp string         `json:"timestamp"`
}
