package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hardpos/internal/core/entity"
	"hardpos/internal/core/id"
)

type mockEntity struct {
	entity.Base
	Name   string `db:"name" json:"name"`
	Phone  string `db:"phone" json:"phone"`
	Hidden string `db:"-" json:"-"`
	NoTag  string
}

func TestExtractDBColumns_EmbeddedBase(t *testing.T) {
	cols := ExtractDBColumns[mockEntity]()

	expected := []string{"id", "version", "created_at", "updated_at", "name", "phone"}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
	assert.NotContains(t, cols, "-")
	assert.Len(t, cols, len(expected))
}

func TestStructToMap_EmbeddedBase(t *testing.T) {
	e := mockEntity{
		Base:   entity.NewBase(),
		Name:   "PVC Pipe",
		Phone:  "9876543210",
		Hidden: "not stored",
	}

	m := StructToMap(e)

	assert.Equal(t, e.ID, m["id"])
	assert.Equal(t, 1, m["version"])
	assert.Equal(t, "PVC Pipe", m["name"])
	assert.Equal(t, "9876543210", m["phone"])
	assert.NotContains(t, m, "-")
	assert.NotContains(t, m, "Hidden")
}

func TestStructToMap_Pointer(t *testing.T) {
	e := &mockEntity{Base: entity.Base{ID: id.New(), Version: 3}, Name: "Hammer"}

	m := StructToMap(e)

	assert.Equal(t, e.ID, m["id"])
	assert.Equal(t, 3, m["version"])
	assert.Equal(t, "Hammer", m["name"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("nope"))
}
