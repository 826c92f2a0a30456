package pricing

import (
	"context"
	"fmt"
	"os"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

// priceFile is the layout of the seed file:
//
//	rooms:
//	  - room_type: bedroom
//	    price: 900
//	accessories:
//	  - room_type: kids
//	    accessory: Study Table
//	    price: "4,500"
//	features: [...]
//	packages: [...]
type priceFile struct {
	Rooms       []entities.PriceRecord `yaml:"rooms"`
	Accessories []entities.PriceRecord `yaml:"accessories"`
	Features    []entities.PriceRecord `yaml:"features"`
	Packages    []entities.PriceRecord `yaml:"packages"`
}

// FilePriceSource serves the pricing tables from a YAML file. The file is
// read on every fetch so edits show up on the next catalog load.
type FilePriceSource struct {
	path string
}

var _ interfaces.IPriceSource = (*FilePriceSource)(nil)

func NewFilePriceSource(path string) *FilePriceSource {
	return &FilePriceSource{path: path}
}

func (s *FilePriceSource) FetchRoomPrices(ctx context.Context) ([]entities.PriceRecord, error) {
	f, err := s.read(ctx)
	return f.Rooms, err
}

func (s *FilePriceSource) FetchAccessoryPrices(ctx context.Context) ([]entities.PriceRecord, error) {
	f, err := s.read(ctx)
	return f.Accessories, err
}

func (s *FilePriceSource) FetchFeaturePrices(ctx context.Context) ([]entities.PriceRecord, error) {
	f, err := s.read(ctx)
	return f.Features, err
}

func (s *FilePriceSource) FetchPackages(ctx context.Context) ([]entities.PriceRecord, error) {
	f, err := s.read(ctx)
	return f.Packages, err
}

func (s *FilePriceSource) read(ctx context.Context) (priceFile, error) {
	if err := ctx.Err(); err != nil {
		return priceFile{}, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return priceFile{}, fmt.Errorf("read price file: %w", err)
	}
	var f priceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return priceFile{}, fmt.Errorf("parse price file %s: %w", s.path, err)
	}
	return f, nil
}
