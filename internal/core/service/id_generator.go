package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/poolshark1904/gestao-produtos/internal/core/domain"
)

type IDGenerator interface {
	NextID(existing domain.ProductList) string
}

// OrdinalIDs produces "<ordinal>-<epoch-millis>" ids. The ordinal starts at
// len(existing)+1 and is bumped until the id is unused.
type OrdinalIDs struct {
	Now func() time.Time
}

func (g OrdinalIDs) NextID(existing domain.ProductList) string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	millis := now().UnixMilli()

	for ordinal := len(existing) + 1; ; ordinal++ {
		id := fmt.Sprintf("%d-%d", ordinal, millis)
		if !existing.Contains(id) {
			return id
		}
	}
}

// UUIDIDs produces random 128-bit ids.
type UUIDIDs struct{}

func (UUIDIDs) NextID(domain.ProductList) string {
	return uuid.NewString()
}

// NewIDGenerator maps a configured scheme name to a generator.
func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch scheme {
	case "", "ordinal":
		return OrdinalIDs{}, nil
	case "uuid":
		return UUIDIDs{}, nil
	}
	return nil, fmt.Errorf("unknown id scheme %q", scheme)
}
