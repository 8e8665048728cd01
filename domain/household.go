package domain

import (
	"errors"
)

var (
	MessageSuccessCreateHousehold = "household created successfully"
	MessageFailedCreateHousehold  = "failed to create household"

	ErrHouseholdNotFound = errors.New("household not found")
)

type (
	CreateHouseholdRequest struct {
		Name string `json:"name" validate:"required"`
	}

	CreateHouseholdResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Token string `json:"token"`
	}
)
