package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ExpenseItem одна строка расходов шоу.
//
// Внешние записи приходят в двух формах: голое число или объект
// {amount, description}. Любая другая форма, как и нечисловой amount,
// приводится к нулю - движок не падает на мусорных данных.
type ExpenseItem struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// UnmarshalJSON accepts a bare number or an {amount, description} object.
// Unrecognized shapes coerce to a zero expense instead of failing.
func (e *ExpenseItem) UnmarshalJSON(data []byte) error {
	*e = ExpenseItem{}

	// Голое число
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		if d, derr := decimal.NewFromString(num.String()); derr == nil {
			e.Amount = d
		}
		return nil
	}

	// Объектная форма
	var obj struct {
		Description string          `json:"description"`
		Amount      json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}

	e.Description = obj.Description
	e.Amount = coerceAmount(obj.Amount)
	return nil
}

func coerceAmount(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if d, derr := decimal.NewFromString(num.String()); derr == nil {
			return d
		}
		return decimal.Zero
	}

	// decimal сериализуется в JSON строкой, так что строковый amount
	// тоже принимаем
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if d, derr := decimal.NewFromString(s); derr == nil {
			return d
		}
	}

	return decimal.Zero
}

// TotalExpenses sums the expense amounts. Malformed entries already coerced
// to zero at parse time contribute nothing.
func TotalExpenses(expenses []ExpenseItem) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
