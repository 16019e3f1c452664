package contract

import (
	"fmt"

	"github.com/huangsam/yomu/schema"
)

// NewTagger builds the tagger selected in cfg.
func NewTagger(cfg *Config) (Tagger, error) {
	switch cfg.Tagger {
	case schema.MeCabTagger:
		return NewMeCabTagger(cfg.MeCabPath, cfg.MeCabArgs)
	case schema.KagomeTagger, "":
		return NewKagomeTagger()
	default:
		return nil, fmt.Errorf("unsupported tagger: %s", cfg.Tagger)
	}
}
