// Package deck holds the browser's in-memory state: how many profiles the
// next fetch asks for, and the ordered list of profiles fetched so far.
//
// A Deck is not safe for concurrent use. The interactive browser mutates it
// only from its event loop; the headless fetch funnels results to a single
// goroutine.
package deck

import "userdeck/internal/randomuser"

// DefaultRequestedCount is the count a Deck starts with and returns to after
// every successful fetch.
const DefaultRequestedCount = 10

// Deck is the accumulated profile list plus the requested count.
type Deck struct {
	requested int
	profiles  []randomuser.Profile
}

// New returns an empty deck requesting DefaultRequestedCount profiles.
func New() *Deck {
	return &Deck{requested: DefaultRequestedCount}
}

// RequestedCount is the count the next fetch will send.
func (d *Deck) RequestedCount() int {
	return d.requested
}

// SetRequestedCount replaces the requested count. No clamping is applied.
func (d *Deck) SetRequestedCount(n int) {
	d.requested = n
}

// Append adds a fetched batch to the end of the list and resets the requested
// count to DefaultRequestedCount, whatever was asked for. Existing entries are
// neither reordered nor deduplicated.
func (d *Deck) Append(batch []randomuser.Profile) {
	d.profiles = append(d.profiles, batch...)
	d.requested = DefaultRequestedCount
}

// Remove drops the profile at position i. It reports false, leaving the deck
// untouched, when i is out of range.
func (d *Deck) Remove(i int) bool {
	if i < 0 || i >= len(d.profiles) {
		return false
	}
	next := make([]randomuser.Profile, 0, len(d.profiles)-1)
	next = append(next, d.profiles[:i]...)
	next = append(next, d.profiles[i+1:]...)
	d.profiles = next
	return true
}

// Len is the number of accumulated profiles.
func (d *Deck) Len() int {
	return len(d.profiles)
}

// At returns the profile at position i.
func (d *Deck) At(i int) (randomuser.Profile, bool) {
	if i < 0 || i >= len(d.profiles) {
		return randomuser.Profile{}, false
	}
	return d.profiles[i], true
}

// Profiles returns a copy of the accumulated list.
func (d *Deck) Profiles() []randomuser.Profile {
	out := make([]randomuser.Profile, len(d.profiles))
	copy(out, d.profiles)
	return out
}
