package services

import "strings"

// RupeesInWords spells out a whole-rupee amount in Indian English.
// Example: 913183 → "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"
func RupeesInWords(amount int64) string {
	if amount < 0 {
		return "Negative " + RupeesInWords(-amount)
	}
	if amount == 0 {
		return "Zero Rupees Only/-"
	}
	return indianWords(amount) + " Rupees Only/-"
}

// indianPlaces are the named groups of the Indian numbering system, largest first.
var indianPlaces = []struct {
	size int64
	name string
}{
	{10000000, "Crores"},
	{100000, "Lakhs"},
	{1000, "Thousand"},
}

func indianWords(n int64) string {
	var parts []string

	for _, p := range indianPlaces {
		if n >= p.size {
			// Counts above 99 crores are spelled recursively.
			parts = append(parts, indianWords(n/p.size)+" "+p.name)
			n %= p.size
		}
	}

	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+wordsUnder100(n))
		} else {
			parts = append(parts, wordsUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func wordsUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
