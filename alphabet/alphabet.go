// Package alphabet defines the fixed 27-symbol alphabet (space plus
// uppercase A-Z) the driver assumes its input is already normalized to,
// and the static per-letter relative-frequency table used to seed the
// static (non-adaptive) model. Both are ported from the original
// Portuguese-text compressor's char_list and char_frequencies tables;
// the text-normalization logic that produced that alphabet (accent
// folding, case folding, whitespace squashing) is out of scope here.
package alphabet

// Portuguese lists the 27 symbols in the same order as the original
// char_list: space first, then A-Z. Builders that sort by weight don't
// care about this order, but it is preserved so a uniform-weight
// Shannon-Fano/Huffman tree built over it is reproducible against the
// source this was ported from.
var Portuguese = []byte{
	' ', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K',
	'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z',
}

// StaticFrequencies holds the relative frequency (percent) of each
// letter in Portuguese text, ported verbatim from char_frequencies.
var StaticFrequencies = map[byte]float64{
	' ': 17.00, 'E': 14.63, 'A': 13.72, 'O': 10.73, 'S': 7.81,
	'R': 6.53, 'I': 6.18, 'N': 5.05, 'D': 4.99, 'M': 4.74,
	'U': 4.63, 'T': 4.34, 'C': 3.88, 'L': 2.78, 'P': 2.52,
	'V': 1.67, 'G': 1.30, 'H': 1.28, 'Q': 1.20, 'B': 1.04,
	'F': 1.02, 'Z': 0.47, 'J': 0.40, 'X': 0.27, 'K': 0.02,
	'W': 0.01, 'Y': 0.01,
}

// IntegerWeights scales StaticFrequencies by 100 and rounds to the
// nearest integer, for every symbol of Portuguese, for use as SymbolList attributes
// (the data model's weight/counter field is an integer).
func IntegerWeights() map[byte]int {
	out := make(map[byte]int, len(Portuguese))
	for _, c := range Portuguese {
		f := StaticFrequencies[c]
		out[c] = int(f*100 + 0.5)
	}
	return out
}
