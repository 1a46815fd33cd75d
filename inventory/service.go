package inventory

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory

// Repository persists the durable snapshot of the item collection. It is the
// single named slot the store rehydrates from at startup and overwrites
// after every mutation.
type Repository interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// ErrDuplicateAccount is returned by Add when a non-purged item already
// holds the same business key.
var ErrDuplicateAccount = errors.New("an item with this account number already exists in the category")

// Service owns the item collection. All mutating operations are serialized
// through one mutex and persist the snapshot before returning. Operations
// referencing an unknown id are silent no-ops: the caller may race an
// already-purged item and must not be failed for it.
type Service struct {
	repo      Repository
	retention Retention
	log       *slog.Logger

	mu    sync.Mutex
	items []Item
}

func NewService(repo Repository, retention Retention, log *slog.Logger) *Service {
	if retention == (Retention{}) {
		retention = DefaultRetention
	}

	if log == nil {
		log = slog.Default()
	}

	return &Service{repo: repo, retention: retention, log: log}
}

// Load rehydrates the collection from the snapshot. Call once at startup,
// before the first reconciliation cycle, so there is something to show
// without waiting on the network.
func (s *Service) Load() error {
	items, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items

	return nil
}

type AddParams struct {
	AccountNumber string
	CustomerName  string
	PhoneNumber   string
	Address       string
	Category      Category
	ReceiveDate   time.Time // zero means today
	Remarks       string
}

// Add creates a new item. The receive date defaults to today, the destroy
// date is derived, and the delivery/trash flags start cleared.
func (s *Service) Add(p AddParams) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{Account: NormalizeAccount(p.AccountNumber), Category: p.Category}
	for _, it := range s.items {
		if it.Key() == key {
			return nil, ErrDuplicateAccount
		}
	}

	receive := p.ReceiveDate
	if receive.IsZero() {
		receive = time.Now()
	}

	name := strings.ToUpper(strings.TrimSpace(p.CustomerName))
	if name == "" {
		name = "UNKNOWN"
	}

	item := Item{
		ID:            uuid.New(),
		AccountNumber: strings.TrimSpace(p.AccountNumber),
		CustomerName:  name,
		PhoneNumber:   strings.TrimSpace(p.PhoneNumber),
		Address:       strings.ToUpper(strings.TrimSpace(p.Address)),
		Category:      p.Category,
		ReceiveDate:   receive,
		DestroyDate:   s.retention.DestroyDate(receive),
		Remarks:       p.Remarks,
	}

	s.items = append(s.items, item)
	if err := s.persist(); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateParams carries partial field changes; nil fields are left alone.
// The id and category are not updatable through normal flows.
type UpdateParams struct {
	AccountNumber *string
	CustomerName  *string
	PhoneNumber   *string
	Address       *string
	ReceiveDate   *time.Time
	Remarks       *string
}

// Update applies field changes, re-normalizing text fields and recomputing
// the destroy date from the effective receive date.
func (s *Service) Update(id uuid.UUID, p UpdateParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Debug("update on unknown item", "id", id)
		return nil
	}

	it := &s.items[idx]

	if p.AccountNumber != nil {
		it.AccountNumber = strings.TrimSpace(*p.AccountNumber)
	}

	if p.CustomerName != nil {
		it.CustomerName = strings.ToUpper(strings.TrimSpace(*p.CustomerName))
	}

	if p.PhoneNumber != nil {
		it.PhoneNumber = strings.TrimSpace(*p.PhoneNumber)
	}

	if p.Address != nil {
		it.Address = strings.ToUpper(strings.TrimSpace(*p.Address))
	}

	if p.ReceiveDate != nil {
		it.ReceiveDate = *p.ReceiveDate
	}

	if p.Remarks != nil {
		it.Remarks = *p.Remarks
	}

	it.DestroyDate = s.retention.DestroyDate(it.ReceiveDate)

	return s.persist()
}

// Deliver marks an item delivered as of the given date. The transition is
// one-way: calling it again may move the date but never clears the flag.
func (s *Service) Deliver(id uuid.UUID, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Debug("deliver on unknown item", "id", id)
		return nil
	}

	if date.IsZero() {
		date = time.Now()
	}

	s.items[idx].IsDelivered = true
	s.items[idx].DeliveryDate = &date

	return s.persist()
}

// Trash soft-deletes an item. Trashed items are excluded from stats and
// protected from reconciliation until restored.
func (s *Service) Trash(id uuid.UUID) error {
	return s.setTrashed(id, true)
}

// Restore clears the soft-delete flag.
func (s *Service) Restore(id uuid.UUID) error {
	return s.setTrashed(id, false)
}

func (s *Service) setTrashed(id uuid.UUID, trashed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Debug("trash/restore on unknown item", "id", id)
		return nil
	}

	s.items[idx].IsTrashed = trashed

	return s.persist()
}

// PurgePermanently removes an item from the collection irrevocably. The
// removal is local only; a later sync will not resurrect it only if the
// caller trashed it first, so callers are expected to confirm with a human
// before invoking this.
func (s *Service) PurgePermanently(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Debug("purge on unknown item", "id", id)
		return nil
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)

	return s.persist()
}

// Items returns a copy of the current collection.
func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)

	return out
}

// Replace swaps in the next collection state and persists it. This is the
// apply step for reconciliation: the engine computes the next state, the
// store stays the only writer.
func (s *Service) Replace(items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]Item, len(items))
	copy(s.items, items)

	return s.persist()
}

// Stats computes the per-category summary plus the aggregate TOTAL row,
// over non-trashed items only.
func (s *Service) Stats() []CategoryStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	byCat := make(map[Category]*CategoryStats, len(Categories))
	total := CategoryStats{Category: TotalRow}

	out := make([]CategoryStats, 0, len(Categories)+1)
	for _, c := range Categories {
		out = append(out, CategoryStats{Category: string(c)})
		byCat[c] = &out[len(out)-1]
	}

	for _, it := range s.items {
		if it.IsTrashed {
			continue
		}

		cs, ok := byCat[it.Category]
		if !ok {
			continue
		}

		cs.Received++
		total.Received++

		if it.IsDelivered {
			cs.Delivered++
			total.Delivered++
		} else if now.After(it.DestroyDate) {
			cs.Destruction++
			total.Destruction++
		}
	}

	for i := range out {
		out[i].Balance = out[i].Received - out[i].Delivered
	}

	total.Balance = total.Received - total.Delivered

	return append(out, total)
}

// indexOf is a linear scan; the collection stays in the hundreds-to-low-
// thousands range, so no id index is kept.
func (s *Service) indexOf(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}

	return -1
}

func (s *Service) persist() error {
	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)

	if err := s.repo.Save(snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}
