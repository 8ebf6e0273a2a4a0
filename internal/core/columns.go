package core

// columns.go describes the product sheet layout.
//
// Every column is optional: a missing column reads as blank for every row.
// ValidateHeaders only reports what is missing so the run can log it; it
// never rejects a sheet.

import "strings"

// Column names as they appear in the sheet header.
const (
	ColBrand       = "brand"
	ColLine        = "line"
	ColCode        = "code"
	ColProductName = "product_name"
	ColType        = "type"
	ColTempNewMin  = "temp_new_min"
	ColTempNewMax  = "temp_new_max"
	ColTempOldMin  = "temp_old_min"
	ColTempOldMax  = "temp_old_max"
	ColTempWetMin  = "temp_wet_min"
	ColTempWetMax  = "temp_wet_max"
	ColNotes       = "notes"
	ColImageFile   = "image_file"
	ColPriority    = "priority"
	ColActive      = "active"
)

// FieldSpec describes one sheet column.
type FieldSpec struct {
	Name    string   // Header name
	Aliases []string // Alternate header names, tried in order after Name
}

// ProductSheet lists the columns BuildRecord reads, in sheet order.
var ProductSheet = []FieldSpec{
	{Name: ColBrand},
	{Name: ColLine},
	{Name: ColCode},
	{Name: ColProductName},
	{Name: ColType},
	{Name: ColSegment, Aliases: []string{ColSegmentAlt}},
	{Name: ColTempNewMin},
	{Name: ColTempNewMax},
	{Name: ColTempOldMin},
	{Name: ColTempOldMax},
	{Name: ColTempWetMin},
	{Name: ColTempWetMax},
	{Name: ColNotes},
	{Name: ColImageFile},
	{Name: ColPriority},
	{Name: ColActive},
}

// ValidateHeaders returns the specs whose column (or any alias) is absent
// from idx. For specs with aliases the name is reported as "name|alias".
func ValidateHeaders(idx HeaderIndex, specs []FieldSpec) []string {
	var missing []string

	for _, spec := range specs {
		names := append([]string{spec.Name}, spec.Aliases...)
		found := false
		for _, n := range names {
			if _, ok := idx[NormalizeHeader(n)]; ok {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, strings.Join(names, "|"))
		}
	}

	return missing
}

// SheetHeader returns the primary column names of specs, for blank templates.
func SheetHeader(specs []FieldSpec) []string {
	header := make([]string, len(specs))
	for i, spec := range specs {
		header[i] = spec.Name
	}
	return header
}
