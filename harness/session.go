package harness

import "github.com/gofrs/uuid"

// Session pairs a running Driver with a UUIDv4 identifier, used for log
// correlation the same way sqltest.NewFixture names its disposable test
// database with uuid.Must(uuid.NewV4()). Snapshot does not use the ID.
type Session struct {
	ID     string
	Driver *Driver
}

// NewSession starts a fresh tokenizing session over src.
func NewSession(src string) *Session {
	return &Session{
		ID:     uuid.Must(uuid.NewV4()).String(),
		Driver: NewDriver(src),
	}
}

// Snapshot serializes the session's scanner state into buf, returning the
// number of bytes written, or 0 if it would not fit (scanner.Scanner.Serialize).
func (s *Session) Snapshot(buf []byte) int {
	return s.Driver.Scanner().Serialize(buf)
}
