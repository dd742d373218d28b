package solitaire

import "fmt"

// SampleDeck is a known-winnable 156-digit deal, kept as a named
// fixture so the solver and the packed-output format can be exercised
// without depending on an external deck file.
const SampleDeck = "092132014012091083053052082131102051021033122084062111094071081013103064041112093042113044104024124023074011054032133072031123134114043073063101121034022061"

// ExtractDigits filters raw deck-file bytes down to the ASCII digit
// stream the loader parses: non-digit bytes are dropped, and "//"
// starts a line comment that runs to the next newline.
func ExtractDigits(data []byte) string {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '/' && i+1 < len(data) && data[i+1] == '/' {
			for i < len(data) && data[i] != '\n' {
				i++
			}
			continue
		}
		if data[i] >= '0' && data[i] <= '9' {
			out = append(out, data[i])
		}
	}
	return string(out)
}

// DecodeDeck parses a 156-digit string into 52 deck values (Suit*13 +
// Rank). Each card is encoded as a (rank-tens, rank-ones, suit) triple
// using 1-origin digits: rank in [01,13], suit in [1,4]. The deck
// file's suit encoding (1=clubs,2=diamonds,3=hearts,4=spades) is
// remapped here onto the internal ordering {0:clubs,1:diamonds,
// 2:spades,3:hearts}, which swaps the file's spades/hearts slots.
func DecodeDeck(digits string) ([52]int, error) {
	var values [52]int
	if len(digits) < 156 {
		return values, fmt.Errorf("solitaire: deck needs 156 digits, got %d", len(digits))
	}
	for i := 0; i < 52; i++ {
		d := digits[i*3 : i*3+3]
		suit := int(d[2]-'0') - 1
		if suit < 0 || suit > 3 {
			return values, fmt.Errorf("solitaire: invalid suit digit %q at card %d", d[2], i)
		}
		if suit >= 2 {
			if suit == 2 {
				suit = 3
			} else {
				suit = 2
			}
		}
		rank := int(d[0]-'0')*10 + int(d[1]-'0') - 1
		if rank < 0 || rank > 12 {
			return values, fmt.Errorf("solitaire: invalid rank %q%q at card %d", d[0], d[1], i)
		}
		values[i] = suit*13 + rank
	}
	return values, nil
}
