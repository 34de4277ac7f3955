package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phkdx/flightplandb-go/flightplandb"
)

func testPlan() flightplandb.Plan {
	fromICAO := "EHAM"
	toICAO := "KJFK"
	distance := 3157.7
	likes := 12
	created := time.Now().AddDate(0, 0, -10)
	return flightplandb.Plan{
		ID:        42,
		FromICAO:  &fromICAO,
		ToICAO:    &toICAO,
		Distance:  &distance,
		Likes:     &likes,
		Tags:      []string{"atlantic", "Generated"},
		CreatedAt: &created,
		User:      &flightplandb.User{ID: 1, Username: "lemon"},
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"syntax error", "Distance >"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expr)
			assert.Error(t, err)
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"icao match", `FromICAO == "EHAM"`, true},
		{"icao mismatch", `FromICAO == "EGLL"`, false},
		{"distance comparison", `Distance > 1000`, true},
		{"combined", `FromICAO == "EHAM" && Likes >= 10`, true},
		{"tag helper is case insensitive", `hasTag("generated")`, true},
		{"tag absent", `hasTag("pacific")`, false},
		{"username", `Username == "lemon"`, true},
		{"recency", `daysSince(CreatedAt) < 30`, true},
		{"string helper", `contains(ToICAO, "jfk")`, true},
		{"absent optional is zero", `MaxAltitude == 0`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expr)
			require.NoError(t, err)

			got, err := f.Match(testPlan())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchNonBooleanResult(t *testing.T) {
	// undefined variables keep expr from typing the expression at compile
	// time, so a non-boolean result only shows up when evaluated
	f, err := Compile(`Distance + 1`)
	if err != nil {
		// caught at compile time, also fine
		return
	}

	_, err = f.Match(testPlan())
	assert.Error(t, err)
}

func TestMatchPlanWithoutUser(t *testing.T) {
	f, err := Compile(`Username == ""`)
	require.NoError(t, err)

	got, err := f.Match(flightplandb.Plan{ID: 1})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestString(t *testing.T) {
	f, err := Compile(`Distance > 100`)
	require.NoError(t, err)
	assert.Equal(t, `Distance > 100`, f.String())
}
