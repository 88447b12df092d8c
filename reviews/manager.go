package reviews

import (
	"sync"
	"time"

	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/notify"
	"github.com/tabletaste/tabletaste-app/validation"
)

// MinCommentLength is the shortest review we accept.
const MinCommentLength = 10

// SubmitRequest is the review form payload.
type SubmitRequest struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// Manager keeps the session-scoped review list, newest first. Reviews are
// never persisted; the seed list models the published reviews.
type Manager struct {
	mu       sync.Mutex
	notifier notify.Notifier
	reviews  []models.Review
	nextID   uint
}

func NewManager(seed []models.Review, notifier notify.Notifier) *Manager {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	m := &Manager{
		notifier: notifier,
		reviews:  make([]models.Review, len(seed)),
		nextID:   1,
	}
	copy(m.reviews, seed)
	for _, r := range seed {
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
	}
	return m
}

// SeedReviews returns the published review list.
func SeedReviews() []models.Review {
	return []models.Review{
		{
			ID:           1,
			CustomerName: "Sarah Johnson",
			Rating:       5,
			Comment:      "Absolutely incredible dining experience! The wagyu ribeye was perfectly cooked and the service was impeccable. The atmosphere is elegant yet welcoming. Will definitely be returning soon!",
			Date:         "2024-01-15",
			Verified:     true,
		},
		{
			ID:           2,
			CustomerName: "Michael Chen",
			Rating:       5,
			Comment:      "Celebrated our anniversary here and it exceeded all expectations. The lobster thermidor was exceptional, and the staff made our evening truly special with personalized touches.",
			Date:         "2024-01-10",
			Verified:     true,
		},
		{
			ID:           3,
			CustomerName: "Emma Williams",
			Rating:       4,
			Comment:      "Beautiful restaurant with outstanding food quality. The truffle arancini appetizer was divine. Only minor wait for our table but completely worth it.",
			Date:         "2024-01-05",
			Verified:     true,
		},
	}
}

// List returns the reviews, newest first.
func (m *Manager) List() []models.Review {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Review, len(m.reviews))
	copy(out, m.reviews)
	return out
}

// Submit validates and prepends the review. Submitted reviews start
// unverified.
func (m *Manager) Submit(req SubmitRequest) (models.Review, error) {
	verr := &validation.Error{}
	if req.CustomerName == "" {
		verr.Add("customer_name", "required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		verr.Add("rating", "must be between 1 and 5")
	}
	if req.Comment == "" {
		verr.Add("comment", "required")
	} else if len(req.Comment) < MinCommentLength {
		verr.Add("comment", "please provide a more detailed review")
	}
	if err := verr.OrNil(); err != nil {
		m.notifier.Notify(notify.KindError, err.Error())
		return models.Review{}, err
	}

	m.mu.Lock()
	review := models.Review{
		ID:           m.nextID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Date:         time.Now().Format(models.DateLayout),
		Verified:     false,
	}
	m.nextID++
	m.reviews = append([]models.Review{review}, m.reviews...)
	m.mu.Unlock()

	m.notifier.Notify(notify.KindSuccess, "Thank you for your review! It has been submitted successfully.")
	return review, nil
}
