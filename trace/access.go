// Package trace reads memory access traces and records them.
//
// A trace is a text file with one access per line:
//
//	<hex address> <access type> <cycle>
//
// for example "0x1f40 READ 120". Blank lines and lines starting with '#' are
// skipped.
package trace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/dramkit/signal"
	"github.com/sarchlab/dramkit/util"
)

// ErrMalformedAccess is matched by all errors caused by bad trace lines.
var ErrMalformedAccess = errors.New("malformed access")

// Access is one record of a memory trace.
type Access struct {
	ID         string
	HexAddr    string
	AccessType string
	Time       uint64
}

// ParseAccess parses a single trace line.
func ParseAccess(line string) (Access, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Access{}, fmt.Errorf("%w: expected 3 fields, got %d",
			ErrMalformedAccess, len(fields))
	}

	a := Access{
		HexAddr:    fields[0],
		AccessType: fields[1],
	}

	if _, err := a.Address(); err != nil {
		return Access{}, err
	}

	t, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Access{}, fmt.Errorf("%w: bad time %q", ErrMalformedAccess,
			fields[2])
	}

	a.Time = t

	return a, nil
}

// Address returns the address of the access.
func (a Access) Address() (uint64, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(a.HexAddr, "0x"), "0X")

	addr, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad address %q", ErrMalformedAccess,
			a.HexAddr)
	}

	return addr, nil
}

// IsWrite returns true if the access type names a write.
func (a Access) IsWrite() bool {
	switch strings.ToUpper(a.AccessType) {
	case "WRITE", "W":
		return true
	default:
		return false
	}
}

// ToTransaction converts the access into a transaction added at the access
// time.
func (a Access) ToTransaction() (*signal.Transaction, error) {
	addr, err := a.Address()
	if err != nil {
		return nil, err
	}

	return &signal.Transaction{
		ID:         a.ID,
		Address:    addr,
		IsWrite:    a.IsWrite(),
		AddedCycle: a.Time,
	}, nil
}

// String renders the access in the trace line format.
func (a Access) String() string {
	return fmt.Sprintf("%s %s %d", a.HexAddr, a.AccessType, a.Time)
}

// ParseAccessList parses accesses separated by delim, such as a
// comma-separated list given on a command line.
func ParseAccessList(list string, delim rune) ([]Access, error) {
	items := util.StringSplit(list, delim)
	accesses := make([]Access, 0, len(items))

	for i, item := range items {
		a, err := ParseAccess(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}

		accesses = append(accesses, a)
	}

	return accesses, nil
}
