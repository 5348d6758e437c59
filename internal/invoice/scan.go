package invoice

import (
	"regexp"
	"strconv"
	"strings"
)

// Receipt scanning. The OCR step itself lives outside this service; what
// arrives here is the recognized text, which a deliberately simple pair of
// regexes turns into a prefilled invoice draft. Unparseable receipts fall
// back to placeholder values instead of failing.

var (
	totalPattern  = regexp.MustCompile(`(?i)(?:Total|Amount Due|TOTAL)\s*[$€]?\s*(\d+\.\d{2})`)
	clientPattern = regexp.MustCompile(`(?i)Invoice To:\s*([A-Za-z\s,]+)\n`)
)

// ScanResult is the structured outcome of parsing one receipt.
type ScanResult struct {
	Client   string  `json:"client"`
	Total    float64 `json:"total"`
	FullText string  `json:"full_text"`
}

const fallbackClient = "Scanned Client, Inc."

// ParseReceipt extracts the client name and total amount from recognized
// receipt text.
func ParseReceipt(text string) ScanResult {
	result := ScanResult{Client: fallbackClient, FullText: text}

	if m := totalPattern.FindStringSubmatch(text); m != nil {
		if total, err := strconv.ParseFloat(m[1], 64); err == nil {
			result.Total = total
		}
	}
	if m := clientPattern.FindStringSubmatch(text); m != nil {
		if client := strings.TrimSpace(m[1]); client != "" {
			result.Client = client
		}
	}
	return result
}
