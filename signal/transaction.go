package signal

import "fmt"

// Transaction is a read or write request as seen by the memory controller.
type Transaction struct {
	ID            string
	Address       uint64
	IsWrite       bool
	AddedCycle    uint64
	CompleteCycle uint64
}

// TypeName returns "WRITE" for writes and "READ" for reads.
func (t *Transaction) TypeName() string {
	if t.IsWrite {
		return "WRITE"
	}

	return "READ"
}

// Latency returns the number of cycles between adding and completing the
// transaction. It returns 0 before the transaction completes.
func (t *Transaction) Latency() uint64 {
	if t.CompleteCycle < t.AddedCycle {
		return 0
	}

	return t.CompleteCycle - t.AddedCycle
}

// String renders the transaction as a fixed-width trace line.
func (t *Transaction) String() string {
	return fmt.Sprintf("%30d%8s", t.Address, t.TypeName())
}
