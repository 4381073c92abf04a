package devserver

import (
	"net/http"
	"time"

	"github.com/learnhub/lmscli/types"
)

// publishedCourses is the fixed catalog served by the stub. Unpublished
// entries are filtered out, matching the real backend.
var publishedCourses = []types.Course{
	{
		ID:          1,
		Title:       "Introduction to Go",
		Description: "Syntax, tooling, and the standard library.",
		Category:    "programming",
		Instructor:  "Tom Okafor",
		Published:   true,
		CreatedAt:   time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:          2,
		Title:       "Distributed Systems",
		Description: "Consensus, replication, and failure models.",
		Category:    "systems",
		Instructor:  "Tom Okafor",
		Published:   true,
		CreatedAt:   time.Date(2025, time.October, 2, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:          3,
		Title:       "Linear Algebra",
		Description: "Vectors, matrices, and eigenvalues.",
		Category:    "math",
		Instructor:  "Jane Doe",
		Published:   true,
		CreatedAt:   time.Date(2025, time.November, 20, 10, 0, 0, 0, time.UTC),
	},
}

func publishedCoursesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, publishedCourses)
}
