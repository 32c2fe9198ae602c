package usecase

import (
	"github.com/spinr-app/dispatch/services/fares"
)

// FareUC implements the fare use case interface
type FareUC struct {
	fareRepo fares.FareRepo
}

// NewFareUC creates a new fare use case
func NewFareUC(fareRepo fares.FareRepo) *FareUC {
	return &FareUC{
		fareRepo: fareRepo,
	}
}
