package page

// Selector is a predicate over elements.
type Selector func(e *Element) bool

// Tag matches elements with the given tag name.
func Tag(name string) Selector { return func(e *Element) bool { return e.Tag() == name } }

// AttrEquals matches elements whose attribute key is exactly val. No
// normalization is applied.
func AttrEquals(key, val string) Selector {
	return func(e *Element) bool {
		v, ok := e.Attr(key)
		return ok && v == val
	}
}

// HasAttr matches elements that carry the attribute key.
func HasAttr(key string) Selector {
	return func(e *Element) bool {
		_, ok := e.Attr(key)
		return ok
	}
}

// Not inverts sel.
func Not(sel Selector) Selector { return func(e *Element) bool { return !sel(e) } }

// And matches elements matched by every selector.
func And(sels ...Selector) Selector {
	return func(e *Element) bool {
		for _, s := range sels {
			if !s(e) {
				return false
			}
		}
		return true
	}
}

const (
	relAttr        = "rel"
	dataMethodAttr = "data-method"
	deleteMethod   = "delete"
)

// Link matches an anchor pointing at href that carries no rel attribute.
func Link(href string) Selector {
	return And(Tag("a"), AttrEquals("href", href), Not(HasAttr(relAttr)))
}

// DeleteLink matches an anchor pointing at href that is marked as a delete link
// with data-method="delete". A rel attribute is allowed.
func DeleteLink(href string) Selector {
	return And(Tag("a"), AttrEquals("href", href), AttrEquals(dataMethodAttr, deleteMethod))
}
