package catalog

import "strings"

// Cities lists the Ecuadorian cities a listing may be published in, in
// display order.
var Cities = []string{
	"Quito",
	"Guayaquil",
	"Cuenca",
	"Ambato",
	"Portoviejo",
	"Machala",
	"Loja",
	"Riobamba",
	"Ibarra",
	"Babahoyo",
	"Santo Domingo",
	"Esmeraldas",
	"Tulcán",
	"Tena",
	"Puyo",
	"Nueva Loja",
	"Macas",
	"Zamora",
	"Orellana",
	"Azogues",
	"Latacunga",
	"Guaranda",
	"Santa Elena",
	"San Cristóbal",
	"Pedro Carbo",
}

// IsValidCity reports whether name matches a known city, ignoring case.
func IsValidCity(name string) bool {
	return CanonicalCity(name) != ""
}

// CanonicalCity returns the canonical spelling of a city, matching the input
// case-insensitively. It returns "" when the city is unknown.
func CanonicalCity(name string) string {
	name = strings.TrimSpace(name)
	for _, c := range Cities {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return ""
}
