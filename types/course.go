package types

import "time"

// Course represents a course in the catalog as returned by the
// published-courses endpoint.
type Course struct {
	// ID is the unique identifier of the course.
	ID int `json:"id"`

	// Title is the human-readable name of the course.
	Title string `json:"title"`

	// Description contains the full course summary shown in the catalog.
	Description string `json:"description"`

	// Category is a free-form label used for catalog filtering.
	Category string `json:"category,omitempty"`

	// Instructor is the display name of the teaching user.
	Instructor string `json:"instructor"`

	// Published indicates whether the course is visible in the public
	// catalog. The published-courses endpoint only returns courses with
	// this set.
	Published bool `json:"published"`

	// CreatedAt is the timestamp when the course was created.
	CreatedAt time.Time `json:"created_at"`
}
