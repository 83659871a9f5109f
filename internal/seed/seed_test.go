package seed

import (
	"context"
	"strings"
	"testing"

	"animal-id-card/internal/adapters/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = `
owners:
  - id: 1
    firstname: Somchai
    lastname: Jaidee
    phone: "0812345678"
  - id: 2
    firstname: Ana
    lastname: Lopez
    email: ana@example.com
addresses:
  - id: 1
    address_line: 99/1 Moo 3
    province: Chiang Mai
`

func TestDecodeAndApply(t *testing.T) {
	fx, err := Decode(strings.NewReader(fixtures))
	require.NoError(t, err)

	repo := memory.NewReferenceRepo(nil, nil)
	res, err := Apply(context.Background(), repo, fx)
	require.NoError(t, err)
	assert.Equal(t, Result{Owners: 2, Addresses: 1}, res)

	// segunda corrida: upsert, sin duplicados
	_, err = Apply(context.Background(), repo, fx)
	require.NoError(t, err)

	owners, err := repo.ListOwners(context.Background())
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, "0812345678", *owners[0].Phone)
	assert.Nil(t, owners[0].Email)
	assert.Equal(t, "ana@example.com", *owners[1].Email)

	addrs, err := repo.ListAddresses(context.Background())
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "Chiang Mai", *addrs[0].Province)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode(strings.NewReader("owners:\n  - id: 1\n    firstname: A\n"))
	assert.Error(t, err, "falta lastname")

	_, err = Decode(strings.NewReader("owners: []\nunknown: 1\n"))
	assert.Error(t, err, "campo desconocido")

	fx, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fx.Owners)
}
