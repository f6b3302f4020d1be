package barcode

// Code 39 wide/narrow patterns, one bit per element, wide = 1. The guard is
// the '*' start/stop symbol.
var code39Patterns = map[rune]string{
	'0': "000110100",
	'1': "100100001",
	'2': "001100001",
	'3': "101100000",
	'4': "000110001",
	'5': "100110000",
	'6': "001110000",
	'7': "000100101",
	'8': "100100100",
	'9': "001100100",
	'A': "100001001",
	'B': "001001001",
	'C': "101001000",
	'D': "000011001",
	'E': "100011000",
	'F': "001011000",
	'G': "000001101",
	'H': "100001100",
	'I': "001001100",
	'J': "000011100",
	'K': "100000011",
	'L': "001000011",
	'M': "101000010",
	'N': "000010011",
	'O': "100010010",
	'P': "001010010",
	'Q': "000000111",
	'R': "100000110",
	'S': "001000110",
	'T': "000010110",
	'U': "110000001",
	'V': "011000001",
	'W': "111000000",
	'X': "010010001",
	'Y': "110010000",
	'Z': "011010000",
	'-': "010000101",
	'.': "110000100",
	' ': "011000100",
	'$': "010101000",
	'/': "010100010",
	'+': "010001010",
	'%': "000101010",
}

// UPC/EAN-style 7-bit digit patterns for compact numeric fields.
var numericPatterns = map[rune]string{
	'0': "0001101",
	'1': "0011001",
	'2': "0010011",
	'3': "0111101",
	'4': "0100011",
	'5': "0110001",
	'6': "0101111",
	'7': "0111011",
	'8': "0110111",
	'9': "0001011",
}

// Code39 encodes digits, uppercase letters and a small punctuation set.
// Lowercase input is uppercased first; anything else becomes the fallback
// pattern.
var Code39 = &Encoding{
	patterns: code39Patterns,
	fallback: "0010010100",
	guard:    "010010100",
	spacer:   true,
}

// Numeric encodes digits only. Non-digit characters are substituted with the
// pattern for '5', never rejected.
var Numeric = &Encoding{
	patterns: numericPatterns,
	fallback: numericPatterns['5'],
	guard:    "101",
	spacer:   false,
}
