package service

// Valid names for the search parameters of the club family. "stadt" and
// "kapazitaet" live on the stadion table one join away.
var suchparameterNamen = []string{
	"name",
	"gruendungsdatum",
	"website",
	"email",
	"telefonnummer",
	"mitgliederanzahl",
	"stadt",
	"kapazitaet",
}

// CheckKeys reports whether every key is a known search parameter name.
// One unknown key invalidates the whole search.
func CheckKeys(suchparameter map[string]string) bool {
	valid := true
	for key := range suchparameter {
		found := false
		for _, name := range suchparameterNamen {
			if key == name {
				found = true
				break
			}
		}
		if !found {
			valid = false
		}
	}
	return valid
}
