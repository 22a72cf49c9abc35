package announce

import "time"

// Announcement is a back-office notice shown to customers while its
// window is open (e.g. holiday hours, a new weekly menu).
type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	ActiveFrom  time.Time `json:"active_from"`
	ActiveUntil time.Time `json:"active_until"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *Announcement) ActiveAt(t time.Time) bool {
	return !t.Before(a.ActiveFrom) && t.Before(a.ActiveUntil)
}
