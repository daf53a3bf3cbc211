package identity

import (
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Generator allocates short ids for repairs, checklists and orders. Ids are
// the first 8 hex characters of a v4 UUID; the legacy data uses this shape
// and handwritten labels in the shop depend on ids staying short.
type Generator struct{}

var _ interfaces.IIDGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) NewID() string {
	return uuid.NewString()[:8]
}

// UTCClock is the production clock. All stored timestamps are UTC.
type UTCClock struct{}

var _ interfaces.IClock = (*UTCClock)(nil)

func NewUTCClock() *UTCClock {
	return &UTCClock{}
}

func (c *UTCClock) Now() time.Time {
	return time.Now().UTC()
}
