package services

import "testing"

func TestFormatINR_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  int64
		expect string
	}{
		{"zero", 0, "₹0"},
		{"small integer", 5, "₹5"},
		{"hundreds", 999, "₹999"},
		{"thousands", 1234, "₹1,234"},
		{"ten thousands", 12345, "₹12,345"},
		{"lakhs", 123456, "₹1,23,456"},
		{"ten lakhs", 1234567, "₹12,34,567"},
		{"crores", 12345678, "₹1,23,45,678"},
		{"negative small", -100, "-₹100"},
		{"negative lakhs", -250000, "-₹2,50,000"},
		{"exact lakh boundary", 100000, "₹1,00,000"},
		{"exact crore boundary", 10000000, "₹1,00,00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatINR(tt.input)
			if got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestApplyIndianGrouping(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"12345", "12,345"},
		{"123456", "1,23,456"},
		{"1234567", "12,34,567"},
		{"123456789", "12,34,56,789"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := applyIndianGrouping(tt.input); got != tt.expect {
				t.Errorf("applyIndianGrouping(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatArea(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"1000", "1000"},
		{"250.5", "250.5"},
		{"166.666666", "166.67"},
		{"0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FormatArea(dec(tt.input)); got != tt.expect {
				t.Errorf("FormatArea(%s) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestRupeesInWords(t *testing.T) {
	tests := []struct {
		input  int64
		expect string
	}{
		{0, "Zero Rupees Only/-"},
		{15, "Fifteen Rupees Only/-"},
		{100, "One Hundred Rupees Only/-"},
		{1005, "One Thousand and Five Rupees Only/-"},
		{913183, "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"},
		{12345678, "One Crores Twenty Three Lakhs Forty Five Thousand Six Hundred and Seventy Eight Rupees Only/-"},
		{-5, "Negative Five Rupees Only/-"},
	}
	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			if got := RupeesInWords(tt.input); got != tt.expect {
				t.Errorf("RupeesInWords(%d) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
