package cart

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/store"
	"github.com/tabletaste/tabletaste-app/validation"
)

type recordingNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (r *recordingNavigator) NavigateTo(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func (r *recordingNavigator) visited() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.routes))
	copy(out, r.routes)
	return out
}

func validCheckout() models.CheckoutRequest {
	return models.CheckoutRequest{
		Name:          "John Smith",
		Email:         "john.smith@example.com",
		Phone:         "(555) 123-4567",
		Address:       "1 Main St",
		City:          "New York",
		ZipCode:       "10001",
		PaymentMethod: "card",
	}
}

func TestCheckoutValidation(t *testing.T) {
	m, _, _ := newTestManager(t)
	m.AddItem(wagyu(), 1)

	missing := validCheckout()
	missing.City = ""
	err := m.Checkout(missing, 0, nil)
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "city", verr.Fields[0].Field)

	bad := validCheckout()
	bad.Email = "bad-email"
	err = m.Checkout(bad, 0, nil)
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Fields[0].Field)
	assert.Equal(t, "invalid email", verr.Fields[0].Reason)

	// Validation failures leave the cart untouched.
	assert.Equal(t, 1, m.ItemCount())
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	m, _, _ := newTestManager(t)

	err := m.Checkout(validCheckout(), 0, nil)

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutClearsCartAfterDelay(t *testing.T) {
	kv := store.NewMemoryStore()
	notifier := &recordingNotifier{}
	m := NewManager(kv, "cart", notifier, DefaultPricing())
	m.AddItem(wagyu(), 2)
	m.SetVisibility(true)
	nav := &recordingNavigator{}

	err := m.Checkout(validCheckout(), 10*time.Millisecond, nav)
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return m.ItemCount() == 0 && len(nav.visited()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"/"}, nav.visited())
	assert.False(t, m.IsOpen())
	kind, msg := notifier.last()
	assert.Equal(t, "success", kind)
	assert.Contains(t, msg, "Order placed successfully")
	// 170.00 subtotal + 8.875% tax, free delivery above the threshold.
	assert.Contains(t, msg, "$185.09")

	// The cleared cart is what got persisted.
	var persisted []models.CartLine
	assert.True(t, kv.Read("cart", &persisted))
	assert.Empty(t, persisted)
}
