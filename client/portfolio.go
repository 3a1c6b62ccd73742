package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"portfolio-backend/models"
)

// Typed wrappers over the generic verbs for the routes the app hits most.

// Credentials is the login payload
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the response to login and register
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	if err := c.Post(ctx, "/api/auth/login", Credentials{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, email, password, name string) (*Session, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var s Session
	if err := c.Post(ctx, "/api/auth/register", body, &s); err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}

// Profile fetches the full portfolio profile for one user.
func (c *Client) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	if err := c.Get(ctx, "/api/users/"+userID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListParams is the shared pagination and sorting window for list reads.
type ListParams struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.SortBy != "" {
		v.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		v.Set("sort_order", p.SortOrder)
	}
	return v
}

// Skills fetches one page of a user's skills.
func (c *Client) Skills(ctx context.Context, userID string, params ListParams) ([]*models.Skill, int, error) {
	var skills []*models.Skill
	total, _, _, err := c.GetPage(ctx, fmt.Sprintf("/api/users/%s/skills", userID), params.values(), &skills)
	return skills, total, err
}

// Projects fetches one page of a user's projects.
func (c *Client) Projects(ctx context.Context, userID string, params ListParams) ([]*models.Project, int, error) {
	var projects []*models.Project
	total, _, _, err := c.GetPage(ctx, fmt.Sprintf("/api/users/%s/projects", userID), params.values(), &projects)
	return projects, total, err
}

// BlogPosts fetches one page of a user's blog posts.
func (c *Client) BlogPosts(ctx context.Context, userID string, params ListParams) ([]*models.BlogPost, int, error) {
	var posts []*models.BlogPost
	total, _, _, err := c.GetPage(ctx, fmt.Sprintf("/api/users/%s/blog-posts", userID), params.values(), &posts)
	return posts, total, err
}

// SendContactMessage submits the public contact form.
func (c *Client) SendContactMessage(ctx context.Context, userID, name, email, message string) (*models.ContactMessage, error) {
	body := map[string]string{
		"sender_name":     name,
		"sender_email":    email,
		"message_content": message,
	}
	var msg models.ContactMessage
	if err := c.Post(ctx, fmt.Sprintf("/api/users/%s/contact-messages", userID), body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// RecordPageVisit fires one page view event.
func (c *Client) RecordPageVisit(ctx context.Context, path, referrer string) error {
	body := map[string]string{"path": path}
	if referrer != "" {
		body["referrer"] = referrer
	}
	return c.Post(ctx, "/api/page-visits", body, nil)
}

// RecordSectionVisit fires one section dwell event.
func (c *Client) RecordSectionVisit(ctx context.Context, section string, durationMs int) error {
	body := map[string]any{"section": section, "duration_ms": durationMs}
	return c.Post(ctx, "/api/section-visits", body, nil)
}
