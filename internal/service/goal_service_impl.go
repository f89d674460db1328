package service

import (
	"context"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

type goalService struct {
	goals GoalLookup
}

func NewGoalService(goals GoalLookup) GoalService {
	return &goalService{goals: goals}
}

func (s *goalService) List(context.Context) []domain.GoalArchetype {
	return s.goals.List()
}
