package dashboard

import "time"

// Stats is the admin overview: platform-wide totals in one payload.
type Stats struct {
	TotalUsers          int   `db:"total_users" json:"total_users"`
	TotalTrainers       int   `db:"total_trainers" json:"total_trainers"`
	PendingApplications int   `db:"pending_applications" json:"pending_applications"`
	TotalClasses        int   `db:"total_classes" json:"total_classes"`
	ActiveClasses       int   `db:"active_classes" json:"active_classes"`
	TotalBookings       int   `db:"total_bookings" json:"total_bookings"`
	TotalPayments       int   `db:"total_payments" json:"total_payments"`
	RevenueCents        int64 `db:"revenue_cents" json:"revenue_cents"`
	TotalRefunds        int   `db:"total_refunds" json:"total_refunds"`
	TotalForumPosts     int   `db:"total_forum_posts" json:"total_forum_posts"`
	TotalReviews        int   `db:"total_reviews" json:"total_reviews"`
	ActiveSubscribers   int   `db:"active_subscribers" json:"active_subscribers"`
}

type RecentPayment struct {
	ID         int       `db:"id" json:"id"`
	UserEmail  string    `db:"user_email" json:"user_email"`
	ClassName  string    `db:"class_name" json:"class_name"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type TopClass struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	BookedCount int    `db:"booked_count" json:"booked_count"`
	MaxCapacity int    `db:"max_capacity" json:"max_capacity"`
}

type Overview struct {
	Stats          Stats           `json:"stats"`
	RecentPayments []RecentPayment `json:"recent_payments"`
	TopClasses     []TopClass      `json:"top_classes"`
}
