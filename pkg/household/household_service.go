package household

import (
	"KitchenMind-Backend/domain"
	"KitchenMind-Backend/entities"
	"KitchenMind-Backend/pkg/jwt"
	"context"
	"github.com/google/uuid"
)

type (
	HouseholdService interface {
		CreateHousehold(ctx context.Context, req domain.CreateHouseholdRequest) (domain.CreateHouseholdResponse, error)
	}

	householdService struct {
		householdRepository HouseholdRepository
		jwtService          jwt.JWTService
	}
)

func NewHouseholdService(householdRepository HouseholdRepository, jwtService jwt.JWTService) HouseholdService {
	return &householdService{
		householdRepository: householdRepository,
		jwtService:          jwtService,
	}
}

func (s *householdService) CreateHousehold(ctx context.Context, req domain.CreateHouseholdRequest) (domain.CreateHouseholdResponse, error) {
	household := &entities.Household{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.householdRepository.CreateHousehold(ctx, household); err != nil {
		return domain.CreateHouseholdResponse{}, err
	}

	token := s.jwtService.GenerateTokenHousehold(household.ID.String())

	return domain.CreateHouseholdResponse{
		ID:    household.ID.String(),
		Name:  household.Name,
		Token: token,
	}, nil
}
