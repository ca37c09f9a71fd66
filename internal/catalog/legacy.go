package catalog

// legacyDisplayName maps a legacy resource segment (the first dot-delimited
// segment of a permission code) to its canonical display name and
// description. The back office used to persist raw resource keys as display
// names; the migration pass rewrites them to the canonical form.
type legacyDisplayName struct {
	Name        string
	Description string
}

var legacyDisplayNames = map[string]legacyDisplayName{
	"doctor":       {Name: "Doctors", Description: "Doctor management"},
	"patient":      {Name: "Patients", Description: "Patient management"},
	"department":   {Name: "Departments", Description: "Department management"},
	"drug":         {Name: "Drugs", Description: "Drug inventory management"},
	"medicine":     {Name: "Drugs", Description: "Drug inventory management"},
	"order":        {Name: "Orders", Description: "Order management"},
	"consultation": {Name: "Consultations", Description: "Consultation management"},
	"hospital":     {Name: "Hospitals", Description: "Hospital management"},
}

// LegacyDisplayName returns the canonical display name and description for a
// legacy resource segment, if one is registered.
func LegacyDisplayName(segment string) (name, description string, ok bool) {
	entry, ok := legacyDisplayNames[segment]
	if !ok {
		return "", "", false
	}
	return entry.Name, entry.Description, true
}
