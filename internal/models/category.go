package models

// Category classifies how a player contributes to match fees.
type Category string

const (
	// CategoryCore players pay their own share plus an equal cut of the
	// unpaid players' shares.
	CategoryCore Category = "core"

	// CategorySelfPaid players pay exactly the even per-player share.
	CategorySelfPaid Category = "self_paid"

	// CategoryUnpaid players have their share covered by core members.
	CategoryUnpaid Category = "unpaid"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCore, CategorySelfPaid, CategoryUnpaid:
		return true
	}
	return false
}

// Label returns the human-readable name used in summaries and messages.
func (c Category) Label() string {
	switch c {
	case CategoryCore:
		return "Core Member"
	case CategorySelfPaid:
		return "Self Paid"
	case CategoryUnpaid:
		return "Unpaid"
	}
	return string(c)
}

// Rank returns the position of the category in the display ordering:
// core before self_paid before unpaid. Unknown categories sort last.
func (c Category) Rank() int {
	switch c {
	case CategoryCore:
		return 0
	case CategorySelfPaid:
		return 1
	case CategoryUnpaid:
		return 2
	}
	return 3
}
