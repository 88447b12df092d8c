package cart

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/notify"
	"github.com/tabletaste/tabletaste-app/utils"
	"github.com/tabletaste/tabletaste-app/validation"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrEmptyCart rejects checkout of a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// DefaultProcessingDelay simulates the payment round-trip.
const DefaultProcessingDelay = 2 * time.Second

// ValidateCheckout checks the delivery details. Payment itself is
// simulated, so the payment method is not validated beyond presence of the
// contact and address fields.
func ValidateCheckout(req models.CheckoutRequest) error {
	verr := &validation.Error{}
	if req.Name == "" {
		verr.Add("name", "required")
	}
	if req.Email == "" {
		verr.Add("email", "required")
	} else if !emailPattern.MatchString(req.Email) {
		verr.Add("email", "invalid email")
	}
	if req.Phone == "" {
		verr.Add("phone", "required")
	}
	if req.Address == "" {
		verr.Add("address", "required")
	}
	if req.City == "" {
		verr.Add("city", "required")
	}
	if req.ZipCode == "" {
		verr.Add("zip_code", "required")
	}
	return verr.OrNil()
}

// Checkout validates req and, after the configured delay, clears the cart,
// notifies success, and sends the client home. The delay models the
// asynchronous order confirmation; it carries no cancellation, so callers
// that go away before it fires must tolerate the late clear.
func (m *Manager) Checkout(req models.CheckoutRequest, delay time.Duration, nav notify.Navigator) error {
	if err := ValidateCheckout(req); err != nil {
		return err
	}
	if m.ItemCount() == 0 {
		return ErrEmptyCart
	}
	if delay < 0 {
		delay = 0
	}

	total := m.Total()
	time.AfterFunc(delay, func() {
		m.Clear()
		m.SetVisibility(false)
		m.notifier.Notify(notify.KindSuccess, fmt.Sprintf(
			"Order placed successfully! Your total was %s. You will receive a confirmation email shortly.",
			utils.FormatCurrency(total)))
		if nav != nil {
			nav.NavigateTo("/")
		}
	})
	return nil
}
