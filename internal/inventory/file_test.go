package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/freefire/internal/inventory"
	"github.com/calvinalkan/freefire/pkg/engine"
)

func Test_LoadFile_Parses_JSONC_With_Comments_And_Trailing_Commas(t *testing.T) {
	t.Parallel()

	items, err := inventory.LoadFile(filepath.Join("testdata", "kit.jsonc"))
	require.NoError(t, err)

	if diff := cmp.Diff(scenario(), items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func Test_LoadFile_Returns_ErrItemFileRead_When_Missing(t *testing.T) {
	t.Parallel()

	_, err := inventory.LoadFile(filepath.Join(t.TempDir(), "nope.jsonc"))
	require.ErrorIs(t, err, inventory.ErrItemFileRead)
	assert.Contains(t, err.Error(), "does not exist")
}

func Test_ParseItems_Rejects_Bad_Input(t *testing.T) {
	t.Parallel()

	for name, data := range map[string]string{
		"NotJSON":      `{"items": [`,
		"UnknownField": `{"items": [{"name": "a", "category": "b", "quantity": 1, "weight": 2}]}`,
		"WrongType":    `{"items": [{"name": "a", "category": "b", "quantity": "many"}]}`,
	} {
		_, err := inventory.ParseItems([]byte(data))
		require.Error(t, err, name)
	}
}

func Test_LoadFile_Wraps_Parse_Errors_With_Path(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.jsonc")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := inventory.LoadFile(path)
	require.ErrorIs(t, err, inventory.ErrItemFileInvalid)
	assert.Contains(t, err.Error(), path)
}

func Test_InsertAll_Continues_Past_Rejected_Items(t *testing.T) {
	t.Parallel()

	limits, err := inventory.LimitsFor(inventory.ProfileTower, 3)
	require.NoError(t, err)

	inv := inventory.New(limits)

	report := inv.InsertAll([]engine.Record{
		{Name: "Motor", Category: "propulsao", Quantity: 9},
		{Name: "Chip", Category: "controle", Quantity: 0},
		{Name: "Motor", Category: "propulsao", Quantity: 4},
		{Name: "Antena", Category: "comunicacao", Quantity: 2},
		{Name: "Painel", Category: "energia", Quantity: 5},
	})

	assert.Equal(t, 3, report.Inserted)
	assert.Equal(t, []string{"Motor"}, report.Duplicates)
	require.Len(t, report.Rejected, 2)
	assert.Equal(t, 1, report.Rejected[0].Index)
	require.ErrorIs(t, report.Rejected[0].Err, inventory.ErrQuantityOutOfRange)
	assert.Equal(t, "Painel", report.Rejected[1].Name)
	require.ErrorIs(t, report.Rejected[1].Err, inventory.ErrFull)
}
