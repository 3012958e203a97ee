package payment

import "github.com/shopspring/decimal"

// SystemA is the method set of External Payment System A
type SystemA interface {
	MakePayment(amount decimal.Decimal)
	MakeRefund(amount decimal.Decimal)
}

// SystemB is the method set of External Payment System B
type SystemB interface {
	SendPayment(amount decimal.Decimal)
	ProcessRefund(amount decimal.Decimal)
}

// AdapterA exposes System A as an Operation
type AdapterA struct {
	system SystemA
}

// NewAdapterA takes ownership of system
func NewAdapterA(system SystemA) *AdapterA {
	return &AdapterA{system: system}
}

// ProcessPayment forwards to MakePayment
func (a *AdapterA) ProcessPayment(amount decimal.Decimal) {
	a.system.MakePayment(amount)
}

// RefundPayment forwards to MakeRefund
func (a *AdapterA) RefundPayment(amount decimal.Decimal) {
	a.system.MakeRefund(amount)
}

// AdapterB exposes System B as an Operation
type AdapterB struct {
	system SystemB
}

// NewAdapterB takes ownership of system
func NewAdapterB(system SystemB) *AdapterB {
	return &AdapterB{system: system}
}

// ProcessPayment forwards to SendPayment
func (a *AdapterB) ProcessPayment(amount decimal.Decimal) {
	a.system.SendPayment(amount)
}

// RefundPayment forwards to ProcessRefund
func (a *AdapterB) RefundPayment(amount decimal.Decimal) {
	a.system.ProcessRefund(amount)
}
