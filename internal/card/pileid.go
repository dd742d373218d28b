package card

// PileID identifies one of the thirteen piles in fixed numeric order.
type PileID int

const (
	Waste PileID = iota
	Tableau1
	Tableau2
	Tableau3
	Tableau4
	Tableau5
	Tableau6
	Tableau7
	Stock
	Foundation1
	Foundation2
	Foundation3
	Foundation4
)

// NumPiles is the total pile count.
const NumPiles = 13

// TableauPiles lists the seven tableau pile IDs in ascending order.
var TableauPiles = [7]PileID{Tableau1, Tableau2, Tableau3, Tableau4, Tableau5, Tableau6, Tableau7}

// FoundationPiles lists the four foundation pile IDs in ascending order.
var FoundationPiles = [4]PileID{Foundation1, Foundation2, Foundation3, Foundation4}

// IsTableau reports whether id names one of the seven tableau piles.
func (id PileID) IsTableau() bool { return id >= Tableau1 && id <= Tableau7 }

// IsFoundation reports whether id names one of the four foundation piles.
func (id PileID) IsFoundation() bool { return id >= Foundation1 }

// FoundationFor returns the foundation pile for a given suit.
func FoundationFor(s Suit) PileID { return Foundation1 + PileID(s) }
