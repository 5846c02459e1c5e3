package goals

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stash/internal/goal"
)

type goalResponse struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	TargetAmount  decimal.Decimal    `json:"targetAmount"`
	CurrentAmount decimal.Decimal    `json:"currentAmount"`
	OrderIndex    int                `json:"orderIndex"`
	SideGoals     []sideGoalResponse `json:"sideGoals"`
}

type sideGoalResponse struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	TargetAmount  decimal.Decimal    `json:"targetAmount"`
	CurrentAmount decimal.Decimal    `json:"currentAmount"`
	SubGoals      []sideGoalResponse `json:"subGoals"`
}

type depositResponse struct {
	ID         uuid.UUID       `json:"id"`
	GoalID     uuid.UUID       `json:"goalId"`
	GoalTitle  string          `json:"goalTitle"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	IsSideGoal bool            `json:"isSideGoal"`
}

type distributionResponse struct {
	Allocations map[uuid.UUID]decimal.Decimal `json:"allocations"`
	Leftover    decimal.Decimal               `json:"leftover"`
}

func toResponse(g goal.Goal) goalResponse {
	return goalResponse{
		ID:            g.ID,
		Title:         g.Title,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		OrderIndex:    g.OrderIndex,
		SideGoals:     toSideGoalResponseList(g.SideGoals),
	}
}

func toResponseList(goals []goal.Goal) []goalResponse {
	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g)
	}

	return resp
}

func toSideGoalResponse(sg goal.SideGoal) sideGoalResponse {
	return sideGoalResponse{
		ID:            sg.ID,
		Title:         sg.Title,
		TargetAmount:  sg.TargetAmount,
		CurrentAmount: sg.CurrentAmount,
		SubGoals:      toSideGoalResponseList(sg.SubGoals),
	}
}

func toSideGoalResponseList(sgs []goal.SideGoal) []sideGoalResponse {
	resp := make([]sideGoalResponse, len(sgs))
	for i, sg := range sgs {
		resp[i] = toSideGoalResponse(sg)
	}

	return resp
}

func toDepositResponseList(deposits []goal.Deposit) []depositResponse {
	resp := make([]depositResponse, len(deposits))
	for i, d := range deposits {
		resp[i] = depositResponse{
			ID:         d.ID,
			GoalID:     d.GoalID,
			GoalTitle:  d.GoalTitle,
			Amount:     d.Amount,
			Date:       d.Date,
			IsSideGoal: d.IsSideGoal,
		}
	}

	return resp
}

func toDistributionResponse(d *goal.Distribution) distributionResponse {
	return distributionResponse{
		Allocations: d.Allocations,
		Leftover:    d.Leftover,
	}
}
