package services

import (
	"testing"
	"time"

	"pueblastay/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Casa Juárez":          "casa-juarez",
		"  La Noria 23  ":      "la-noria-23",
		"Depto. Cholula #4":    "depto-cholula-4",
		"Ñoño":                 "nono",
		"CASA CENTRO HISTÓRICO": "casa-centro-historico",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "slug de %q", input)
	}
}

func TestWhatsappLink(t *testing.T) {
	link := WhatsappLink("+52 (222) 123-4567", "Hola! Me interesa Casa Centro")
	assert.Equal(t, "https://wa.me/522221234567?text=Hola%21+Me+interesa+Casa+Centro", link)

	// Sin texto no lleva query
	assert.Equal(t, "https://wa.me/522221234567", WhatsappLink("52 222 123 4567", ""))

	// Sin dígitos no hay link
	assert.Equal(t, "", WhatsappLink("sin numero", "hola"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("alberca", "alberca"))
	assert.Equal(t, 1.0, CalculateSimilarity("", ""))
	assert.Less(t, CalculateSimilarity("alberca", "gimnasio"), 0.5)
	assert.Greater(t, CalculateSimilarity("room_number", "room_numer"), 0.85)
}

func TestParseRoomType(t *testing.T) {
	assert.Equal(t, "private", ParseRoomType("busco un cuarto privado en Cholula"))
	assert.Equal(t, "private", ParseRoomType("PRIVADO con baño propio"))
	assert.Equal(t, "private", ParseRoomType("a private room near campus"))

	// La palabra clave puede ir en cualquier parte de la consulta, no
	// solo como frase exacta
	assert.Equal(t, "shared", ParseRoomType("algo compartido y barato"))
	assert.Equal(t, "shared", ParseRoomType("cuarto compartido cerca del centro"))
	assert.Equal(t, "shared", ParseRoomType("busco roomie en Angelópolis"))

	assert.Equal(t, "", ParseRoomType("cerca de la UDLAP"))
	assert.Equal(t, "", ParseRoomType(""))
}

func TestMergeFilters(t *testing.T) {
	propID := uint(7)
	kitchen := true
	oldIn := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	oldOut := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)

	old := &dto.SearchFilters{
		PropertyID:        &propID,
		Type:              "private",
		Zone:              "cholula",
		HasPrivateKitchen: &kitchen,
		CheckIn:           &oldIn,
		CheckOut:          &oldOut,
	}

	// Búsqueda nueva solo con zona: hereda lo demás incluidas las fechas
	merged := MergeFilters(old, &dto.SearchFilters{Zone: "centro"})
	assert.Equal(t, "centro", merged.Zone)
	assert.Equal(t, "private", merged.Type)
	require.NotNil(t, merged.PropertyID)
	assert.Equal(t, uint(7), *merged.PropertyID)
	require.NotNil(t, merged.CheckIn)
	assert.Equal(t, oldIn, *merged.CheckIn)

	// Ventana nueva incompleta: no se hereda la mitad vieja
	newIn := time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC)
	merged = MergeFilters(old, &dto.SearchFilters{CheckIn: &newIn})
	require.NotNil(t, merged.CheckIn)
	assert.Equal(t, newIn, *merged.CheckIn)
	assert.Nil(t, merged.CheckOut)
}
