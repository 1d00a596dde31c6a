package models

// Player represents one member of the team roster.
type Player struct {
	// ID is the unique identifier for the player (UUID format).
	// Assigned at creation and stable for the player's lifetime.
	ID string

	// Name is the display name of the player. Never empty.
	Name string

	// Phone is an optional free-form contact number.
	Phone string

	// UpiID is an optional payment handle (e.g. "name@bank"). It is usually
	// set lazily the first time the player is chosen as collector.
	UpiID string

	// Category determines how the player's fee share is computed.
	// Fixed at creation, changed only by an explicit update.
	Category Category

	// IsActive marks whether the player is eligible for match selection.
	IsActive bool

	// CreatedAt is the Unix timestamp when the player was added.
	CreatedAt int64
}

// PlayerUpdate is a partial update to a player. Nil fields are left unchanged.
type PlayerUpdate struct {
	Name     *string
	Phone    *string
	UpiID    *string
	Category *Category
	IsActive *bool
}

// Apply copies the non-nil fields of u onto p.
func (u PlayerUpdate) Apply(p *Player) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.UpiID != nil {
		p.UpiID = *u.UpiID
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
}
