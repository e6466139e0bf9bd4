package owner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/property-manager/internal/adapters/clients/backend/transform"
	"github.com/jsamuelsen11/property-manager/internal/domain/owner"
)

func TestToDomainOwner(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToDomainOwner(nil))

	got := ToDomainOwner(&OwnerDTO{
		IDOwner:   "2",
		Name:      "Ana",
		Address:   "Calle 2",
		Photo:     transform.Ptr(""),
		Birthday:  "1990-05-01",
		CreatedAt: transform.Ptr("2024-01-01T00:00:00Z"),
	})

	require.NotNil(t, got)
	assert.Equal(t, "2", got.ID)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "Calle 2", got.Address)
	assert.Nil(t, got.Photo)
	assert.Equal(t, "1990-05-01", got.Birthday)
	assert.NotNil(t, got.CreatedAt)
	assert.Nil(t, got.UpdatedAt)
}

func TestToDomainOwnerList_DropsNullEntries(t *testing.T) {
	t.Parallel()

	got := ToDomainOwnerList([]*OwnerDTO{nil, {IDOwner: "1"}, nil})

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestToCreateOwnerDTO_WireShape(t *testing.T) {
	t.Parallel()

	req := &owner.CreateRequest{Name: "Ana", Address: "Calle 2", Birthday: "1990-05-01"}

	b, err := json.Marshal(ToCreateOwnerDTO(req))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana","address":"Calle 2","birthday":"1990-05-01"}`, string(b))
}

func TestToUpdateOwnerDTO_PartialPayload(t *testing.T) {
	t.Parallel()

	req := &owner.UpdateRequest{ID: "2", Photo: transform.Ptr("https://img.example/a.png")}

	b, err := json.Marshal(ToUpdateOwnerDTO(req))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2","photo":"https://img.example/a.png"}`, string(b))
}

func TestRoundTrip_CreateThenAdapt(t *testing.T) {
	t.Parallel()

	req := &owner.CreateRequest{Name: "Ana", Address: "Calle 2", Birthday: "1990-05-01", Photo: transform.Ptr("p.png")}
	dto := ToCreateOwnerDTO(req)

	back := ToDomainOwner(&OwnerDTO{Name: dto.Name, Address: dto.Address, Photo: dto.Photo, Birthday: dto.Birthday})

	assert.Equal(t, req.Name, back.Name)
	assert.Equal(t, req.Address, back.Address)
	assert.Equal(t, req.Birthday, back.Birthday)
	assert.Equal(t, req.Photo, back.Photo)
}
