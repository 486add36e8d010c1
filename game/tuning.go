package game

const (
	// BaseSpeed is the per-frame displacement of an unburdened blob.
	BaseSpeed = 4.0

	// ArriveThreshold is the motion-equivalence distance: within it a
	// blob snaps to its target and stops.
	ArriveThreshold = 1.0

	// ReachedEpsilon is the server-side distance at which a reported
	// position clears IsMoving.
	ReachedEpsilon = 5.0

	// Heavier wallets move slower: speed scales down by
	// BalanceSlowdown per BalanceSlowdownUnit of balance, floored at
	// MinSpeedFraction of BaseSpeed.
	MinSpeedFraction    = 0.1
	BalanceSlowdown     = 0.05
	BalanceSlowdownUnit = 1000.0
)
