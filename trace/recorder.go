package trace

import (
	"github.com/sarchlab/dramkit/datarecording"
	"github.com/sarchlab/dramkit/signal"
)

// Table names used by the Recorder.
const (
	AccessTable  = "trace_accesses"
	CommandTable = "trace_commands"
)

// accessEntry represents an access in the database
type accessEntry struct {
	ID         string
	Address    uint64
	AccessType string
	IsWrite    bool
	Time       uint64
}

// commandEntry represents a command in the database
type commandEntry struct {
	ID        string
	Kind      string
	Address   uint64
	Channel   uint64
	Rank      uint64
	BankGroup uint64
	Bank      uint64
	Row       uint64
	Column    uint64
}

// A Recorder writes accesses and commands through a data recorder.
type Recorder struct {
	dataRecorder        datarecording.DataRecorder
	commandTableCreated bool
}

// NewRecorder creates the access table and returns the Recorder. The command
// table is only created when the first command is recorded.
func NewRecorder(dataRecorder datarecording.DataRecorder) *Recorder {
	r := &Recorder{dataRecorder: dataRecorder}

	r.dataRecorder.CreateTable(AccessTable, accessEntry{})

	return r
}

// RecordAccess records a parsed access.
func (r *Recorder) RecordAccess(a Access) error {
	addr, err := a.Address()
	if err != nil {
		return err
	}

	r.dataRecorder.InsertData(AccessTable, accessEntry{
		ID:         a.ID,
		Address:    addr,
		AccessType: a.AccessType,
		IsWrite:    a.IsWrite(),
		Time:       a.Time,
	})

	return nil
}

// RecordCommand records a command together with its location.
func (r *Recorder) RecordCommand(cmd *signal.Command) {
	if !r.commandTableCreated {
		r.dataRecorder.CreateTable(CommandTable, commandEntry{})
		r.commandTableCreated = true
	}

	l := cmd.Location

	r.dataRecorder.InsertData(CommandTable, commandEntry{
		ID:        cmd.ID,
		Kind:      cmd.Kind.String(),
		Address:   cmd.Address,
		Channel:   l.Channel,
		Rank:      l.Rank,
		BankGroup: l.BankGroup,
		Bank:      l.Bank,
		Row:       l.Row,
		Column:    l.Column,
	})
}

// Flush writes all buffered records.
func (r *Recorder) Flush() {
	r.dataRecorder.Flush()
}
