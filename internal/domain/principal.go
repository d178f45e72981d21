package domain

import "strings"

// Principal is the authenticated identity behind a request. It is resolved
// outside the core (bearer credential verification) and trusted as-is.
type Principal struct {
	ID          string
	DisplayName string
	Contact     string
}

// Author returns the minimal author record describing p.
func (p Principal) Author() Author {
	return Author{ID: p.ID, DisplayName: p.DisplayName, Contact: p.Contact}
}

// Author is the denormalized author information attached to every idea in
// responses.
type Author struct {
	ID          string
	DisplayName string
	Contact     string
}

// AnonymousDisplayName is shown for authors missing from the directory.
const AnonymousDisplayName = "Anonymous"

// OrAnonymous returns a with the anonymous display name when it has none, so an
// author who never set a name renders the same wherever it appears.
func (a Author) OrAnonymous() Author {
	if strings.TrimSpace(a.DisplayName) == "" {
		a.DisplayName = AnonymousDisplayName
	}
	return a
}

// AnonymousAuthor is the placeholder used when an author record cannot be found.
// The idea still renders; only the author details are unknown.
func AnonymousAuthor(id string) Author {
	return Author{ID: id, DisplayName: AnonymousDisplayName}
}
