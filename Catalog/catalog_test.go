package Catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMenu(t *testing.T) {
	menu := DefaultMenu()

	assert.True(t, menu.HasCategory("Filtros"))
	assert.True(t, menu.HasCategory("Frenos"))
	assert.False(t, menu.HasCategory("No existe"))

	assert.True(t, menu.HasSubcategory("Filtros", "Filtro de aceite"))
	assert.False(t, menu.HasSubcategory("Filtros", "Pastillas de freno"))
	assert.False(t, menu.HasSubcategory("No existe", "Filtro de aceite"))

	// Uncurated categories accept any subcategory until the side-file
	// pins them down.
	assert.True(t, menu.HasSubcategory("Tuning", "Aleron"))
}

func TestCategoriesSorted(t *testing.T) {
	menu := Menu{"Frenos": {}, "Aceites": {}, "Motor": {}}
	assert.Equal(t, []string{"Aceites", "Frenos", "Motor"}, menu.Categories())
}

func TestSubcategoriesCopy(t *testing.T) {
	menu := Menu{"Frenos": {"Pastillas de freno"}}

	subs := menu.Subcategories("Frenos")
	require.Equal(t, []string{"Pastillas de freno"}, subs)
	subs[0] = "mutated"
	assert.Equal(t, []string{"Pastillas de freno"}, menu.Subcategories("Frenos"))

	assert.Nil(t, menu.Subcategories("No existe"))
}

func TestLoadFromSideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu_recambios.json")
	// JSON5: trailing commas and comments survive hand edits.
	content := `{
		// menú del taller
		"Filtros": ["Filtro de aceite", "Filtro de aire",],
		"Frenos": [],
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("CATALOG_PATH", path)

	menu, err := Load()
	require.NoError(t, err)
	assert.True(t, menu.HasCategory("Filtros"))
	assert.True(t, menu.HasSubcategory("Filtros", "Filtro de aire"))
	assert.False(t, menu.HasCategory("Motor"), "side-file replaces the built-in menu")
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	t.Setenv("CATALOG_PATH", filepath.Join(t.TempDir(), "nope.json"))

	menu, err := Load()
	require.NoError(t, err)
	assert.True(t, menu.HasCategory("Filtros"), "built-in menu when the side-file is absent")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu_recambios.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid"), 0644))
	t.Setenv("CATALOG_PATH", path)

	_, err := Load()
	assert.Error(t, err)
}
