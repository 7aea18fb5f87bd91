package usecase

import (
	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/domain/money"
)

// derivePayments keeps the three derived currency fields consistent with the
// two editable cost/down-payment pairs after a payment-step write.
//
// Per group, independently: the balance recomputes only when both operands
// parse; otherwise the previous derived value stands and the inconsistency is
// left for full schema validation at submit time. Balance due is never taken
// from the caller. The two totals always recompute, with missing or
// unparsable operands treated as zero.
func derivePayments(prev entities.PaymentDetails, next *entities.PaymentDetails) {
	next.PaintingPayment.BalanceDue = prev.PaintingPayment.BalanceDue
	if bal, ok := money.Difference(next.PaintingPayment.TotalCost, next.PaintingPayment.DownPayment); ok {
		next.PaintingPayment.BalanceDue = bal
	}

	next.HandymanPayment.BalanceDue = prev.HandymanPayment.BalanceDue
	if bal, ok := money.Difference(next.HandymanPayment.TotalCost, next.HandymanPayment.DownPayment); ok {
		next.HandymanPayment.BalanceDue = bal
	}

	next.GrandTotal = money.SumLenient(next.PaintingPayment.TotalCost, next.HandymanPayment.TotalCost)
	next.TotalDownPayment = money.SumLenient(next.PaintingPayment.DownPayment, next.HandymanPayment.DownPayment)
}
