package domain

// A CartEntry is a full snapshot of the product at the time it was
// added, paired with a quantity. Catalog drift after adding does not
// affect entries already in the cart.
//
// Quantity is always greater than zero while the entry is persisted:
// setting it to zero removes the entry entirely.
type CartEntry struct {
	Product
	Quantity int
}

// A CartSnapshot is the result of reading the persisted cart.
//
// Degraded reports that the persisted blob existed but could not be
// read or decoded, so Entries fell back to empty. Callers that only
// care about what the shopper sees treat a degraded snapshot exactly
// like an empty cart.
type CartSnapshot struct {
	Entries  []CartEntry
	Degraded bool
}
