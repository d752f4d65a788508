package collide

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// MaxGroup is the highest usable collision group id.
const MaxGroup = 31

// Groups decides which objects may be reported as touching.
// Two objects interact when each one's membership is whitelisted and not
// blacklisted by the other. With several memberships, one accepted group
// on each side is enough.
type Groups struct {
	Membership uint32
	Whitelist  uint32
	Blacklist  uint32
}

// NewGroups returns groups that are members of nothing and accept every group.
func NewGroups() Groups {
	return Groups{Whitelist: ^uint32(0)}
}

// WithMembership replaces the membership with the given group ids.
func (g Groups) WithMembership(ids ...uint) Groups {
	g.Membership = mask(ids)
	return g
}

// WithWhitelist replaces the whitelist with the given group ids.
func (g Groups) WithWhitelist(ids ...uint) Groups {
	g.Whitelist = mask(ids)
	return g
}

// WithBlacklist replaces the blacklist with the given group ids.
func (g Groups) WithBlacklist(ids ...uint) Groups {
	g.Blacklist = mask(ids)
	return g
}

// filter maps the groups onto a chipmunk shape filter: membership becomes
// the categories and the accepted groups become the mask.
func (g Groups) filter() cp.ShapeFilter {
	return cp.ShapeFilter{
		Categories: uint(g.Membership),
		Mask:       uint(g.Whitelist &^ g.Blacklist),
	}
}

// CanInteractWith reports whether g and other may produce a contact.
func (g Groups) CanInteractWith(other Groups) bool {
	return !g.filter().Reject(other.filter())
}

func mask(ids []uint) uint32 {
	var m uint32
	for _, id := range ids {
		if id > MaxGroup {
			panic(fmt.Sprintf("collide: group id %d out of range [0,%d]", id, MaxGroup))
		}
		m |= 1 << id
	}
	return m
}
