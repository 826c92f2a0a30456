package usecase

import (
	"context"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/domain/pricing"
)

// IEstimateUseCase prices a configuration without a wizard session.
type IEstimateUseCase interface {
	Calculate(ctx context.Context, rooms entities.RoomConfiguration, pkg string) (entities.EstimateResult, error)
	CalculateCommercial(form entities.CommercialForm) entities.CommercialEstimate
}

type EstimateUseCase struct {
	catalog ICatalogUseCase
	calc    pricing.Calculator
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(catalog ICatalogUseCase, calc pricing.Calculator) *EstimateUseCase {
	if calc == nil {
		calc = pricing.Calculate
	}
	return &EstimateUseCase{catalog: catalog, calc: calc}
}

// Calculate loads a fresh catalog and prices the rooms. An unknown package
// prices at factor 1.
func (u *EstimateUseCase) Calculate(ctx context.Context, rooms entities.RoomConfiguration, pkg string) (entities.EstimateResult, error) {
	catalog, err := u.catalog.Load(ctx)
	if err != nil {
		return entities.EstimateResult{}, err
	}
	if pkg == "" {
		pkg = entities.DefaultPackage
	}
	return u.calc(catalog, rooms, pkg), nil
}

func (u *EstimateUseCase) CalculateCommercial(form entities.CommercialForm) entities.CommercialEstimate {
	return pricing.CalculateCommercial(form)
}
