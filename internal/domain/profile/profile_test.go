package profile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMerge_AbsentFieldsPreserve(t *testing.T) {
	existing := Profile{
		UserID:    uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		LinkedIn:  "https://linkedin.com/in/ada",
	}

	got := Merge(existing, Patch{Address: strPtr("12 Analytical St")})

	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "https://linkedin.com/in/ada", got.LinkedIn)
	assert.Equal(t, "12 Analytical St", got.Address)
}

func TestMerge_PresentFieldsOverwrite(t *testing.T) {
	existing := Profile{FirstName: "Ada", GitHub: "https://github.com/ada"}

	got := Merge(existing, Patch{
		FirstName: strPtr("Grace"),
		GitHub:    strPtr(""),
	})

	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "", got.GitHub, "explicit empty overwrites")
}

func TestMerge_IntoZeroValue(t *testing.T) {
	got := Merge(Profile{}, Patch{
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Lovelace"),
		Email:     strPtr("ada@example.com"),
	})

	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Empty(t, got.Portfolio)
}
