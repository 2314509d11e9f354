package core

import "strings"

// DBOrdering is one sort key of a listing.
type DBOrdering struct {
	Field     string
	Ascending bool
}

// ParseOrdering reads a comma separated list of fields, a leading "-" means descending.
func ParseOrdering(s string) []DBOrdering {
	var ords []DBOrdering
	for _, f := range strings.Split(s, ",") {
		f = CleanString(f)
		if f == "" || f == "-" {
			continue
		}
		ord := DBOrdering{Field: f, Ascending: true}
		if strings.HasPrefix(f, "-") {
			ord.Field = f[1:]
			ord.Ascending = false
		}
		ords = append(ords, ord)
	}
	return ords
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}
