package graph

import "github.com/pthm/sysmllink/pkg/model"

// Property keys used by membership-family elements.
const (
	PropMembershipOwningNamespace = "membershipOwningNamespace"
	PropMemberElement             = "memberElement"
	PropMemberName                = "memberName"
	PropMemberShortName           = "memberShortName"
	PropVisibility                = "visibility"
)

// MembershipView is a thin typed accessor over a membership-family
// Element's property map (spec §4.2, "Membership view"). It does not copy
// data; it reads through to the underlying Element each call.
type MembershipView struct {
	Element *Element
}

// AsMembershipView interprets e as a MembershipView, or returns ok=false if
// e's kind is not a membership-family kind.
func AsMembershipView(e *Element) (MembershipView, bool) {
	if e == nil || !isMembershipKind(e.Kind) {
		return MembershipView{}, false
	}
	return MembershipView{Element: e}, true
}

// MemberElement returns the referenced member's identity.
func (m MembershipView) MemberElement() (model.ElementID, bool) {
	v, ok := m.Element.Prop(PropMemberElement)
	if !ok {
		return model.NilElementID, false
	}
	return v.AsRef()
}

// MemberName returns the member's declared name, if any.
func (m MembershipView) MemberName() (string, bool) {
	v, ok := m.Element.Prop(PropMemberName)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// MemberShortName returns the member's declared short name, if any.
func (m MembershipView) MemberShortName() (string, bool) {
	v, ok := m.Element.Prop(PropMemberShortName)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Visibility returns the membership's visibility, defaulting to Public when
// unset (an element with no explicit visibility keyword is public).
func (m MembershipView) Visibility() VisibilityKind {
	v, ok := m.Element.Prop(PropVisibility)
	if !ok {
		return Public
	}
	token, ok := v.AsEnum()
	if !ok {
		return Public
	}
	return ParseVisibility(token)
}

// MembershipOwningNamespace returns the namespace this membership is owned
// by.
func (m MembershipView) MembershipOwningNamespace() (model.ElementID, bool) {
	v, ok := m.Element.Prop(PropMembershipOwningNamespace)
	if !ok {
		return model.NilElementID, false
	}
	return v.AsRef()
}
