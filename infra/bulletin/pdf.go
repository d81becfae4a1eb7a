package bulletin

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts the text of every page of a PDF document.
type PDFExtractor struct{}

// Pages returns one text per readable page, lines separated by "\n". Pages
// that fail to decode are skipped. Malformed documents make the underlying
// reader panic; the panic is returned as an error.
func (PDFExtractor) Pages(doc []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("read pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		// Some generators position every line explicitly, which leaves the
		// plain text without line breaks. Rebuild lines from rows then.
		if strings.Count(text, "\n") < 2 {
			if rows, err := page.GetTextByRow(); err == nil && len(rows) > 0 {
				text = joinRows(rows)
			}
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// joinRows renders rows top to bottom, words left to right.
func joinRows(rows pdf.Rows) string {
	sorted := make(pdf.Rows, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position > sorted[j].Position })

	var b strings.Builder
	for _, row := range sorted {
		words := make([]pdf.Text, len(row.Content))
		copy(words, row.Content)
		sort.SliceStable(words, func(i, j int) bool { return words[i].X < words[j].X })
		parts := make([]string, 0, len(words))
		for _, w := range words {
			if s := strings.TrimSpace(w.S); s != "" {
				parts = append(parts, s)
			}
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
