// Package signal defines the commands and transactions that flow through a
// DRAM memory controller model.
package signal

import "fmt"

// CommandKind represents the kind of a DRAM command.
type CommandKind int

// A list of supported DRAM command kinds.
const (
	CmdKindRead CommandKind = iota
	CmdKindReadPrecharge
	CmdKindWrite
	CmdKindWritePrecharge
	CmdKindActivate
	CmdKindPrecharge
	CmdKindRefreshBank
	CmdKindRefresh
	CmdKindSRefEnter
	CmdKindSRefExit
	NumCmdKind
)

var cmdKindNames = [NumCmdKind]string{
	"read",
	"read_p",
	"write",
	"write_p",
	"activate",
	"precharge",
	"refresh_bank",
	"refresh",
	"self_refresh_enter",
	"self_refresh_exit",
}

// String returns the trace name of the command kind. Unknown kinds are
// named "WRONG".
func (k CommandKind) String() string {
	if k < 0 || k >= NumCmdKind {
		return "WRONG"
	}

	return cmdKindNames[k]
}

// ParseCommandKind returns the command kind with the given trace name.
func ParseCommandKind(name string) (CommandKind, error) {
	for i, n := range cmdKindNames {
		if n == name {
			return CommandKind(i), nil
		}
	}

	return NumCmdKind, fmt.Errorf("unknown command kind %q", name)
}

// Location determines where a command is executed.
type Location struct {
	Channel   uint64
	Rank      uint64
	BankGroup uint64
	Bank      uint64
	Row       uint64
	Column    uint64
}

// Command is a signal sent from the memory controller to the DRAM devices.
type Command struct {
	ID       string
	Kind     CommandKind
	Address  uint64
	Location Location
}

// IsRead returns true if the command reads data.
func (c *Command) IsRead() bool {
	return c.Kind == CmdKindRead || c.Kind == CmdKindReadPrecharge
}

// IsWrite returns true if the command writes data.
func (c *Command) IsWrite() bool {
	return c.Kind == CmdKindWrite || c.Kind == CmdKindWritePrecharge
}

// IsReadOrWrite returns true if the command transfers data.
func (c *Command) IsReadOrWrite() bool {
	return c.IsRead() || c.IsWrite()
}

// IsRefresh returns true if the command refreshes a bank or a rank.
func (c *Command) IsRefresh() bool {
	return c.Kind == CmdKindRefresh || c.Kind == CmdKindRefreshBank
}

// String renders the command as a fixed-width trace line.
func (c *Command) String() string {
	l := c.Location

	return fmt.Sprintf("%-20s %3d %3d %3d %3d %#8x %#8x",
		c.Kind, l.Channel, l.Rank, l.BankGroup, l.Bank, l.Row, l.Column)
}
