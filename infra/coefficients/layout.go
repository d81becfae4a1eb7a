package coefficients

// Layout locates the two coefficient tables inside the workbook. Row indexes
// are zero based sheet rows.
type Layout struct {
	Path         string `json:"path"`
	Sheet        string `json:"sheet"`
	HPIndexLabel string `json:"hp_index_label"`
	HPHeaderRow  int    `json:"hp_header_row"`
	HPRows       int    `json:"hp_rows"`
	SeatKeyLabel string `json:"seat_key_label"`
	// SeatHeaderRow is the row naming the seat bands. The seat block starts
	// one row above it; that title row carries no data.
	SeatHeaderRow int `json:"seat_header_row"`
}

// DefaultLayout describes the published Boater workbook.
func DefaultLayout() Layout {
	l := Layout{}
	l.SetDefaults()
	return l
}

// SetDefaults fills unset fields with the published workbook layout.
func (l *Layout) SetDefaults() {
	if l.Path == "" {
		l.Path = "Boater_excel.xlsx"
	}
	if l.Sheet == "" {
		l.Sheet = "Foglio1"
	}
	if l.HPIndexLabel == "" {
		l.HPIndexLabel = "Caballos de fuerza"
	}
	if l.HPRows <= 0 {
		l.HPRows = 3
	}
	if l.SeatKeyLabel == "" {
		l.SeatKeyLabel = "Asientos"
	}
	if l.SeatHeaderRow <= l.HPHeaderRow+l.HPRows {
		l.SeatHeaderRow = l.HPHeaderRow + l.HPRows + 3
	}
}
