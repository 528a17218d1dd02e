// Package Catalog holds the spare-part classification vocabulary: a
// closed set of categories, each with its subcategory options. The
// vocabulary normally lives in a JSON side-file so the workshop can
// extend it without a rebuild; when the file is absent the built-in
// menu applies.
package Catalog

import (
	"os"
	"sort"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Menu maps a category name to its subcategory options. A category
// mapped to an empty list accepts any subcategory string.
type Menu map[string][]string

// Path returns the side-file location, CATALOG_PATH or the default
// next to the binary.
func Path() string {
	if p := os.Getenv("CATALOG_PATH"); p != "" {
		return p
	}
	return "menu_recambios.json"
}

// Load reads the vocabulary fresh from the side-file; no caching, so
// edits to the menu show up on the next form open. A missing file is
// not an error, the built-in menu is returned instead. JSON5 syntax is
// accepted because the file is hand-edited.
func Load() (Menu, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultMenu(), nil
		}
		return nil, err
	}
	var menu Menu
	if err := json5.Unmarshal(data, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// HasCategory reports vocabulary membership of a category name.
func (m Menu) HasCategory(category string) bool {
	_, ok := m[category]
	return ok
}

// HasSubcategory reports whether sub is a valid choice under category.
// Categories without a curated subcategory list accept anything.
func (m Menu) HasSubcategory(category, sub string) bool {
	subs, ok := m[category]
	if !ok {
		return false
	}
	if len(subs) == 0 {
		return true
	}
	for _, s := range subs {
		if s == sub {
			return true
		}
	}
	return false
}

// Categories lists the category names sorted for stable dropdowns.
func (m Menu) Categories() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subcategories lists the options under one category, nil when the
// category is unknown.
func (m Menu) Subcategories(category string) []string {
	subs, ok := m[category]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// DefaultMenu is the built-in vocabulary. Categories with well-known
// option sets carry them; the rest accept free-form subcategories
// until the side-file curates them.
func DefaultMenu() Menu {
	return Menu{
		"Accesorios para coche":                  {},
		"Aceites y liquidos":                     {"Aceite de motor", "Aceite de transmision", "Liquido de frenos", "Anticongelante", "Liquido limpiaparabrisas"},
		"Aire acondicionado":                     {"Compresor", "Condensador", "Evaporador", "Filtro deshidratante"},
		"Amortiguacion":                          {"Amortiguador", "Copela", "Muelle de suspension"},
		"Arboles de transmision y diferenciales": {},
		"Caja de cambios":                        {},
		"Calefaccion y ventilacion":              {},
		"Carroceria":                             {},
		"Correas, cadenas, rodillos":             {"Correa de distribucion", "Correa poli V", "Kit de distribucion", "Rodillo tensor"},
		"Direccion":                              {"Cremallera", "Bomba de direccion", "Rotula de direccion"},
		"Embrague":                               {"Kit de embrague", "Volante motor", "Cojinete de desembrague"},
		"Encendido y precalentamiento":           {"Bujias", "Bujias de precalentamiento", "Bobina de encendido"},
		"Escape":                                 {"Silenciador", "Catalizador", "Sonda lambda", "Filtro de particulas"},
		"Filtros":                                {"Filtro de aceite", "Filtro de aire", "Filtro de combustible", "Filtro de habitaculo"},
		"Frenos":                                 {"Pastillas de freno", "Discos de freno", "Pinza de freno", "Tambor de freno", "Latiguillos"},
		"Herramientas y equipo":                  {},
		"Iluminacion":                            {"Faro delantero", "Piloto trasero", "Lamparas", "Intermitente"},
		"Interior":                               {},
		"Juntas y retenes":                       {},
		"Kit de reparacion":                      {},
		"Motor":                                  {"Junta de culata", "Bomba de aceite", "Arbol de levas", "Pistones", "Turbocompresor"},
		"Neumaticos":                             {},
		"Palier y junta homocinetica":            {},
		"Productos para cuidado del coche":       {},
		"Remolque / piezas adicionales":          {},
		"Rodamientos":                            {"Rodamiento de rueda", "Buje de rueda"},
		"Sensores, reles, unidades de control":   {},
		"Sistema de combustible":                 {"Bomba de combustible", "Inyectores", "Carburador"},
		"Sistema de refrigeracion de motor":      {"Radiador", "Bomba de agua", "Termostato", "Ventilador"},
		"Sistema electrico":                      {"Bateria", "Alternador", "Motor de arranque", "Fusibles"},
		"Sistema limpiaparabrisas":               {"Escobillas", "Motor limpiaparabrisas", "Bomba de agua limpiaparabrisas"},
		"Sujeciones":                             {},
		"Suspension":                             {"Brazo de suspension", "Silentblock", "Rotula de suspension", "Barra estabilizadora"},
		"Tuberias y mangueras":                   {},
		"Tuning":                                 {},
	}
}
