package game

// Entity is the authoritative record of one connected participant.
// Position advances toward Target only in client-side simulation; the
// server stores the last authoritative coordinate it was told about.
type Entity struct {
	ID       string
	X, Y     float64
	TargetX  float64
	TargetY  float64
	Color    string
	IsMoving bool

	ArkAddress string // empty until registered; required to be a payment target

	// AvailableBalance is self-reported and advisory only, used for
	// cosmetic speed scaling, never for settlement.
	AvailableBalance float64
	HasBalance       bool
}
