package invoice

import "testing"

func TestParseReceipt(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantClient string
		wantTotal  float64
	}{
		{
			name:       "standard receipt",
			text:       "ACME Supplies\nInvoice To: Maxi Design Studio\nWidgets 2x\nTotal € 125.50\nThank you",
			wantClient: "Maxi Design Studio",
			wantTotal:  125.50,
		},
		{
			name:       "amount due variant",
			text:       "Invoice To: Jansen, Bakker\nAmount Due $ 42.00\n",
			wantClient: "Jansen, Bakker",
			wantTotal:  42.00,
		},
		{
			name:       "uppercase total no currency sign",
			text:       "TOTAL 99.99\n",
			wantClient: "Scanned Client, Inc.",
			wantTotal:  99.99,
		},
		{
			name:       "no matches falls back",
			text:       "illegible thermal paper",
			wantClient: "Scanned Client, Inc.",
			wantTotal:  0,
		},
		{
			name:       "total without cents is ignored",
			text:       "Total 120\n",
			wantClient: "Scanned Client, Inc.",
			wantTotal:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReceipt(tt.text)
			if got.Client != tt.wantClient {
				t.Errorf("client = %q, want %q", got.Client, tt.wantClient)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("total = %v, want %v", got.Total, tt.wantTotal)
			}
			if got.FullText != tt.text {
				t.Error("full text must round-trip for debugging")
			}
		})
	}
}
