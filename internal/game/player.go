package game

// Player is a human (or programmed) participant in the game.
type Player struct {
	holder
}

// NewPlayer creates a player with starting cash.
func NewPlayer(name string, cash int) *Player {
	return &Player{holder: holder{name: name, cash: cash}}
}

// Bank is the game's money supply. It pays out share sales and
// capitalizations and collects purchase money.
type Bank struct {
	holder
}

// NewBank creates the bank with its cash reserve.
func NewBank(cash int) *Bank {
	return &Bank{holder: holder{name: "the bank", cash: cash}}
}
