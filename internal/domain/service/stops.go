package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
)

// stopBook keeps the delivery stops of the current voice session in memory
type stopBook struct {
	mu    sync.RWMutex
	log   zerolog.Logger
	now   func() time.Time
	newID func() string
	stops []entity.DeliveryStop
}

func newStopBook(log zerolog.Logger) *stopBook {
	return &stopBook{
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (b *stopBook) AddStop(args entity.AddStopArgs) (*entity.DeliveryStop, error) {
	name := strings.TrimSpace(args.CustomerName)
	address := strings.TrimSpace(args.Address)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrInvalidStop)
	}
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrInvalidStop)
	}

	stop := entity.DeliveryStop{
		ID:           b.newID(),
		CustomerName: name,
		Address:      address,
		Notes:        strings.TrimSpace(args.Notes),
		Status:       domain.StopPending,
		Timestamp:    b.now(),
	}

	b.mu.Lock()
	b.stops = append(b.stops, stop)
	b.mu.Unlock()

	b.log.Info().Str("stop_id", stop.ID).Str("customer", stop.CustomerName).Msg("delivery stop added")
	return &stop, nil
}

// RemoveStop drops every stop whose customer name matches, ignoring case and
// surrounding spaces, and returns how many were removed.
func (b *stopBook) RemoveStop(customerName string) int {
	target := strings.TrimSpace(customerName)
	if target == "" {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	kept := lo.Reject(b.stops, func(s entity.DeliveryStop, _ int) bool {
		return strings.EqualFold(s.CustomerName, target)
	})
	removed := len(b.stops) - len(kept)
	b.stops = kept

	b.log.Info().Str("customer", target).Int("removed", removed).Msg("delivery stop removal")
	return removed
}

func (b *stopBook) ListStops() []entity.DeliveryStop {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.stops)
}
