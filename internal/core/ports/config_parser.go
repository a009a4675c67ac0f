package ports

import "go.trai.ch/prosa/internal/core/domain"

// ConfigParser turns raw tool configuration text into a configuration tree.
//
//go:generate mockgen -source=config_parser.go -destination=mocks/mock_config_parser.go -package=mocks
type ConfigParser interface {
	// Parse returns the root configuration node. Malformed text yields domain.ErrConfigParse.
	Parse(raw string) (*domain.ConfigNode, error)
}
