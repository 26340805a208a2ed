package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SettlementInputs pure input record for the settlement formula.
// Never persisted by the engine itself - callers decide what to store.
type SettlementInputs struct {
	Guarantee     *decimal.Decimal
	DoorSplitPct  *decimal.Decimal // 0-100
	TicketRevenue *decimal.Decimal
	Expenses      []ExpenseItem
}

// SettlementSummary derived settlement breakdown for a show
type SettlementSummary struct {
	GuaranteeAmount    decimal.Decimal
	DoorSplitAmount    decimal.Decimal
	TotalExpenses      decimal.Decimal
	AmountOwedToArtist decimal.Decimal
	Breakdown          []string
}

var oneHundred = decimal.NewFromInt(100)

// ComputeSettlement computes the amount owed to the artist and the display
// breakdown from guarantee, door-split percentage, ticket revenue and
// itemized expenses.
//
// Payout rule ("guarantee vs. door"): артист получает БОЛЬШЕЕ из гарантии
// и доли от кассы, а не сумму. Это бизнес-политика, не настройка.
func ComputeSettlement(in SettlementInputs) SettlementSummary {
	guarantee := decimal.Zero
	if in.Guarantee != nil {
		guarantee = *in.Guarantee
	}

	revenue := decimal.Zero
	if in.TicketRevenue != nil {
		revenue = *in.TicketRevenue
	}

	doorSplit := decimal.Zero
	if in.DoorSplitPct != nil && revenue.IsPositive() {
		doorSplit = revenue.Mul(*in.DoorSplitPct).Div(oneHundred)
	}

	totalExpenses := TotalExpenses(in.Expenses)

	owed := guarantee
	if doorSplit.GreaterThan(owed) {
		owed = doorSplit
	}

	// Порядок строк фиксирован - он повторяется в выгрузках для промоутеров
	breakdown := []string{}
	if guarantee.IsPositive() {
		breakdown = append(breakdown, fmt.Sprintf("Guarantee: %s", guarantee.StringFixed(2)))
	}
	if doorSplit.IsPositive() {
		breakdown = append(breakdown, fmt.Sprintf("Door split (%s%% of %s): %s",
			in.DoorSplitPct.String(), revenue.StringFixed(2), doorSplit.StringFixed(2)))
	}
	if guarantee.IsPositive() && doorSplit.IsPositive() {
		breakdown = append(breakdown, fmt.Sprintf("Artist receives the greater: %s", owed.StringFixed(2)))
	}
	if totalExpenses.IsPositive() {
		breakdown = append(breakdown, fmt.Sprintf("Expenses: %s", totalExpenses.StringFixed(2)))
	}

	return SettlementSummary{
		GuaranteeAmount:    guarantee,
		DoorSplitAmount:    doorSplit,
		TotalExpenses:      totalExpenses,
		AmountOwedToArtist: owed,
		Breakdown:          breakdown,
	}
}

// ComputeShowPnL returns the venue's profit or loss on a show:
// ticket revenue minus the artist payout minus expenses.
func ComputeShowPnL(ticketRevenue, amountOwedToArtist, totalExpenses decimal.Decimal) decimal.Decimal {
	return ticketRevenue.Sub(amountOwedToArtist).Sub(totalExpenses)
}
