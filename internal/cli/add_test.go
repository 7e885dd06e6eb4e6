package cli

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_PrependsDish(t *testing.T) {
	out, _, err := execute(t, "add", "--name", "Soup", "--description", "Hot", "--price", "15")
	require.NoError(t, err)
	assertGolden(t, "add_soup", out)
}

func TestAdd_CourseAnyCase(t *testing.T) {
	out, _, err := execute(t, "add", "-n", "Sorbet", "-d", "Lemon", "-c", "desserts", "-p", "40.5")
	require.NoError(t, err)
	assert.Contains(t, out, "[4] Sorbet (Desserts) R 40.50\n")
}

func TestAdd_Rejected(t *testing.T) {
	out, _, err := execute(t, "add", "--name", "  ", "--course", "Drinks", "--price=-3")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, out, "Error [E201]: dish rejected\n")
	assert.Contains(t, out, "  name: name is required\n")
	assert.Contains(t, out, "  description: description is required\n")
	assert.Contains(t, out, "  course: course must be one of Starters, Mains, Desserts\n")
	assert.Contains(t, out, "  price: price must not be negative\n")
}

func TestAdd_RejectedJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "add", "--name", "Soup", "--description", "Hot", "--price", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
				Code  string `json:"code"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "price", resp.Error.Details[0].Field)
	assert.Equal(t, "INVALID_PRICE", resp.Error.Details[0].Code)
}

func TestAdd_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "add", "--name", "Soup", "--description", "Hot", "--course", "Mains", "--price", "15")
	require.NoError(t, err)

	var data struct {
		Seq  int64 `json:"seq"`
		Dish struct {
			ID     string `json:"id"`
			Course string `json:"course"`
			Price  string `json:"price"`
		} `json:"dish"`
		Menu struct {
			Count  int `json:"count"`
			Dishes []struct {
				ID string `json:"id"`
			} `json:"dishes"`
		} `json:"menu"`
	}
	decodeData(t, out, &data)

	assert.Equal(t, int64(1), data.Seq)
	assert.Equal(t, "4", data.Dish.ID)
	assert.Equal(t, "Mains", data.Dish.Course)
	assert.Equal(t, "15.00", data.Dish.Price)
	assert.Equal(t, 4, data.Menu.Count)
	require.NotEmpty(t, data.Menu.Dishes)
	assert.Equal(t, "4", data.Menu.Dishes[0].ID)
}

func TestAdd_UUIDIDs(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "--ids", "uuid", "add", "--name", "Soup", "--description", "Hot", "--price", "15")
	require.NoError(t, err)

	var data struct {
		Dish struct {
			ID string `json:"id"`
		} `json:"dish"`
	}
	decodeData(t, out, &data)

	id, err := uuid.Parse(data.Dish.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}
