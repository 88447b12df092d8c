package cart

import (
	"fmt"
	"sync"

	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/notify"
	"github.com/tabletaste/tabletaste-app/store"
)

// Quantity bounds for a single cart line. Below the minimum a line is
// removed rather than kept at zero; above the maximum the change is refused.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// DefaultStorageKey is the store key the cart persists under.
const DefaultStorageKey = "cart"

// Pricing holds the order-total knobs.
type Pricing struct {
	TaxRate               float64
	DeliveryFee           float64
	FreeDeliveryThreshold float64
}

func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               0.08875,
		DeliveryFee:           5.99,
		FreeDeliveryThreshold: 50,
	}
}

// DeliveryFeeFor returns the delivery fee for a given subtotal: waived above
// the free-delivery threshold, flat otherwise.
func (p Pricing) DeliveryFeeFor(subtotal float64) float64 {
	if subtotal > p.FreeDeliveryThreshold {
		return 0
	}
	return p.DeliveryFee
}

// Manager owns the cart and is its only mutation surface. Every mutation
// persists to the key-value store; persistence failures are swallowed there,
// so the in-memory lines stay authoritative for the session. The visibility
// flag is transient and never persisted.
type Manager struct {
	mu       sync.Mutex
	store    store.KeyValueStore
	key      string
	notifier notify.Notifier
	pricing  Pricing

	lines  []models.CartLine
	isOpen bool
}

// NewManager loads any persisted cart from kv under key. A missing or
// corrupt payload is treated as an empty cart, never an error.
func NewManager(kv store.KeyValueStore, key string, notifier notify.Notifier, pricing Pricing) *Manager {
	if key == "" {
		key = DefaultStorageKey
	}
	if notifier == nil {
		notifier = notify.Discard{}
	}
	m := &Manager{
		store:    kv,
		key:      key,
		notifier: notifier,
		pricing:  pricing,
	}
	m.store.Read(m.key, &m.lines)
	return m
}

// clampQuantity is the one quantity policy every mutation path goes
// through. It reports the clamped value and whether the cap bit.
func clampQuantity(q int) (int, bool) {
	if q > MaxQuantity {
		return MaxQuantity, true
	}
	return q, false
}

// AddItem puts qty of item in the cart, merging into an existing line.
// qty below one counts as one. The line quantity never exceeds MaxQuantity;
// pushing past it clamps and warns rather than silently exceeding the cap.
func (m *Manager) AddItem(item models.MenuItem, qty int) {
	if qty < 1 {
		qty = 1
	}

	m.mu.Lock()
	var clamped, merged bool
	if line := m.findLine(item.ID); line != nil {
		merged = true
		line.Quantity, clamped = clampQuantity(line.Quantity + qty)
	} else {
		qty, clamped = clampQuantity(qty)
		m.lines = append(m.lines, models.CartLine{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Image:       item.Image,
			Description: item.Description,
			Quantity:    qty,
		})
	}
	m.persistLocked()
	m.mu.Unlock()

	switch {
	case clamped:
		m.notifier.Notify(notify.KindWarning, fmt.Sprintf("Maximum quantity is %d", MaxQuantity))
	case merged:
		m.notifier.Notify(notify.KindSuccess, fmt.Sprintf("%s quantity updated in cart!", item.Name))
	default:
		m.notifier.Notify(notify.KindSuccess, fmt.Sprintf("%s added to cart!", item.Name))
	}
}

// SetQuantity sets the quantity of the line for id. A value below one
// removes the line; a value above MaxQuantity is rejected with a warning and
// leaves the cart unchanged. Unknown ids are ignored.
func (m *Manager) SetQuantity(id uint, quantity int) {
	if quantity > MaxQuantity {
		m.notifier.Notify(notify.KindWarning, fmt.Sprintf("Maximum quantity is %d", MaxQuantity))
		return
	}

	m.mu.Lock()
	line := m.findLine(id)
	if line == nil {
		m.mu.Unlock()
		return
	}
	if quantity < MinQuantity {
		name := line.Name
		m.removeLocked(id)
		m.persistLocked()
		m.mu.Unlock()
		m.notifier.Notify(notify.KindInfo, fmt.Sprintf("%s removed from cart", name))
		return
	}
	line.Quantity = quantity
	m.persistLocked()
	m.mu.Unlock()
}

// RemoveItem deletes the line for id if present.
func (m *Manager) RemoveItem(id uint) {
	m.mu.Lock()
	line := m.findLine(id)
	if line == nil {
		m.mu.Unlock()
		return
	}
	name := line.Name
	m.removeLocked(id)
	m.persistLocked()
	m.mu.Unlock()

	m.notifier.Notify(notify.KindInfo, fmt.Sprintf("%s removed from cart", name))
}

// Clear empties the cart. Calling it on an empty cart is a no-op that still
// persists the empty state.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.lines = nil
	m.persistLocked()
	m.mu.Unlock()
}

// Reload re-reads the persisted cart, replacing the in-memory lines. Used
// when another writer (the "other tab") changed the stored payload.
func (m *Manager) Reload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var lines []models.CartLine
	if m.store.Read(m.key, &lines) {
		m.lines = lines
	} else {
		m.lines = nil
	}
}

func (m *Manager) ToggleVisibility() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isOpen = !m.isOpen
	return m.isOpen
}

func (m *Manager) SetVisibility(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isOpen = open
}

func (m *Manager) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isOpen
}

// Lines returns a copy of the cart lines in insertion order.
func (m *Manager) Lines() []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// ItemCount is the sum of all line quantities, recomputed fresh.
func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, line := range m.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity across lines.
func (m *Manager) Subtotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subtotalLocked()
}

// Tax applies the configured rate to the current subtotal.
func (m *Manager) Tax() float64 {
	return m.Subtotal() * m.pricing.TaxRate
}

// DeliveryFee for the current subtotal.
func (m *Manager) DeliveryFee() float64 {
	return m.pricing.DeliveryFeeFor(m.Subtotal())
}

// Total is subtotal plus tax plus delivery fee.
func (m *Manager) Total() float64 {
	subtotal := m.Subtotal()
	return subtotal + subtotal*m.pricing.TaxRate + m.pricing.DeliveryFeeFor(subtotal)
}

// Summary bundles the derived view state for the HTTP layer.
func (m *Manager) Summary() models.CartSummary {
	m.mu.Lock()
	lines := make([]models.CartLine, len(m.lines))
	copy(lines, m.lines)
	isOpen := m.isOpen
	m.mu.Unlock()

	count := 0
	subtotal := 0.0
	for _, line := range lines {
		count += line.Quantity
		subtotal += line.Price * float64(line.Quantity)
	}
	tax := subtotal * m.pricing.TaxRate
	fee := m.pricing.DeliveryFeeFor(subtotal)
	return models.CartSummary{
		Lines:       lines,
		ItemCount:   count,
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal + tax + fee,
		IsOpen:      isOpen,
	}
}

func (m *Manager) findLine(id uint) *models.CartLine {
	for i := range m.lines {
		if m.lines[i].ID == id {
			return &m.lines[i]
		}
	}
	return nil
}

func (m *Manager) removeLocked(id uint) {
	kept := m.lines[:0]
	for _, line := range m.lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	m.lines = kept
}

func (m *Manager) subtotalLocked() float64 {
	total := 0.0
	for _, line := range m.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (m *Manager) persistLocked() {
	lines := m.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	m.store.Write(m.key, lines)
}
