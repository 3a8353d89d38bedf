package randomuser

import (
	"strconv"
	"strings"
)

// Profile is one generated user record as returned by the endpoint.
// Field layout mirrors the JSON so a response decodes without a mapping step.
type Profile struct {
	Name     Name     `json:"name"`
	Location Location `json:"location"`
	DOB      DOB      `json:"dob"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Cell     string   `json:"cell"`
	Picture  Picture  `json:"picture"`
	Login    Login    `json:"login"`
	Nat      string   `json:"nat"`
}

// Name holds the honorific and given/family names.
type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Location is the postal part of a profile.
type Location struct {
	Street  Street `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Street is a house number plus street name.
type Street struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// DOB carries the birth date and the derived age.
type DOB struct {
	Date string `json:"date"`
	Age  int    `json:"age"`
}

// Picture lists avatar URLs at the three sizes the endpoint serves.
type Picture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// Login carries the generator's unique identifier.
type Login struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

// ID returns the stable key of the profile.
func (p Profile) ID() string {
	return p.Login.UUID
}

// FullName renders "Title First Last", skipping empty parts.
func (p Profile) FullName() string {
	return joinNonEmpty(" ", p.Name.Title, p.Name.First, p.Name.Last)
}

// Address renders "Number Street, City, State, Country".
func (p Profile) Address() string {
	street := p.Location.Street.Name
	if p.Location.Street.Number != 0 {
		street = joinNonEmpty(" ", strconv.Itoa(p.Location.Street.Number), street)
	}
	return joinNonEmpty(", ", street, p.Location.City, p.Location.State, p.Location.Country)
}

// Avatar returns the medium-size picture URL.
func (p Profile) Avatar() string {
	return p.Picture.Medium
}

// ContactNumber is the number dialled by the call action: the cell number,
// or the landline when no cell is present.
func (p Profile) ContactNumber() string {
	if p.Cell != "" {
		return p.Cell
	}
	return p.Phone
}

// MailtoURI returns the mailto: link for the profile's email.
func (p Profile) MailtoURI() string {
	return "mailto:" + p.Email
}

// TelURI returns the tel: link for the profile's contact number.
func (p Profile) TelURI() string {
	return "tel:" + p.ContactNumber()
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
