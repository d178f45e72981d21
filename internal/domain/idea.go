// Package domain contains the core data types for the idea board.
// It is imported by every other internal package (repo, service, handler).
package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLength is the maximum number of characters allowed in a title.
const MaxTitleLength = 100

// Idea is a short post that any visitor can read and any authenticated
// principal can like. Only its author may edit or delete it.
type Idea struct {
	ID       uuid.UUID
	AuthorID string
	// Author is filled in by the service from the author directory; the
	// store only persists AuthorID.
	Author      Author
	Title       string // empty when absent
	Description string
	Tags        []string
	Likes       []string // principal IDs, each at most once
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LikeCount is always derived from Likes.
func (i Idea) LikeCount() int {
	return len(i.Likes)
}

// LikedBy reports whether principalID is in the idea's like set.
func (i Idea) LikedBy(principalID string) bool {
	return slices.Contains(i.Likes, principalID)
}

// Validate enforces the field constraints shared by create and update.
//   - Description must be non-empty after trimming.
//   - Title, if present, must be at most MaxTitleLength characters.
//
// All violations are reported together in a *ValidationError.
func (i Idea) Validate() error {
	var problems []string
	if strings.TrimSpace(i.Description) == "" {
		problems = append(problems, "description required")
	}
	if utf8.RuneCountInString(i.Title) > MaxTitleLength {
		problems = append(problems, fmt.Sprintf("title cannot be more than %d characters", MaxTitleLength))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// IdeaInput is the caller-supplied payload for creating an idea.
// AuthorID is deliberately absent: it always comes from the principal.
type IdeaInput struct {
	Title       string
	Description string
	Tags        TagInput
}

// NewIdea builds an unsaved idea owned by authorID from in, with text fields
// trimmed, tags normalized and an empty like set.
func NewIdea(authorID string, in IdeaInput) Idea {
	return Idea{
		AuthorID:    authorID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Tags:        in.Tags.Normalize(),
		Likes:       []string{},
	}
}

// IdeaPatch is a partial update. A zero-valued field (empty string, nil or
// empty tag list) means "leave unchanged"; there is no way to clear a field.
type IdeaPatch struct {
	Title       string
	Description string
	Tags        TagInput
}

// Apply returns a copy of i with every non-empty patch field applied.
// The result is not validated; call Validate on it.
//
// Title is optional, so a blank title is treated as absent rather than as a
// request to clear it. A blank description is applied and left for Validate
// to reject.
func (i Idea) Apply(p IdeaPatch) Idea {
	if title := strings.TrimSpace(p.Title); title != "" {
		i.Title = title
	}
	if p.Description != "" {
		i.Description = strings.TrimSpace(p.Description)
	}
	if len(p.Tags) > 0 {
		i.Tags = p.Tags.Normalize()
	}
	return i
}

// TagInput is a tag list as received from clients: either a JSON array of
// strings or a single comma-delimited string. Elements are raw until
// Normalize is called.
type TagInput []string

// UnmarshalJSON accepts ["a", "b"] or "a, b". An empty string decodes to nil.
func (t *TagInput) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("tags must be a string or an array of strings")
	}
	if s == "" {
		*t = nil
		return nil
	}
	*t = strings.Split(s, ",")
	return nil
}

// Normalize trims every tag and drops the empty ones. The result is never nil
// and keeps the caller's order.
func (t TagInput) Normalize() []string {
	out := make([]string, 0, len(t))
	for _, tag := range t {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
