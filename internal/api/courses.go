package api

import (
	"context"
	"net/http"

	"github.com/learnhub/lmscli/types"
)

// PublishedCourses lists the public course catalog. No authentication is
// required; this endpoint doubles as the connectivity fallback probe.
func (c *Client) PublishedCourses(ctx context.Context) ([]types.Course, error) {
	var courses []types.Course
	if err := c.doJSON(ctx, http.MethodGet, "/courses/published", "", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Health checks the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", "", nil, nil)
}
