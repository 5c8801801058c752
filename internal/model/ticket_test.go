package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifadigital/raffle/internal/model"
)

func TestFormatNumber_ZeroPads(t *testing.T) {
	assert.Equal(t, model.TicketNumber("001"), model.FormatNumber(1))
	assert.Equal(t, model.TicketNumber("042"), model.FormatNumber(42))
	assert.Equal(t, model.TicketNumber("500"), model.FormatNumber(500))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want model.TicketNumber
		ok   bool
	}{
		{"canonical", "007", "007", true},
		{"upper bound", "500", "500", true},
		{"out of space", "501", "", false},
		{"zero", "000", "", false},
		{"unpadded", "7", "", false},
		{"letters", "a07", "", false},
		{"too long", "0077", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseNumber(tt.in)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAllNumbers_CoversSpaceInOrder(t *testing.T) {
	all := model.AllNumbers()
	require.Len(t, all, model.TotalNumbers)
	assert.Equal(t, model.TicketNumber("001"), all[0])
	assert.Equal(t, model.TicketNumber("500"), all[len(all)-1])
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
}

func TestSellerID_RoleAndDisplay(t *testing.T) {
	assert.Equal(t, model.RoleAdmin, model.AdminSeller.Role())
	assert.Equal(t, model.RoleSeller, model.SellerID("JEYNY").Role())
	assert.Equal(t, "Jeyny", model.SellerID("JEYNY").DisplayName())
	assert.Equal(t, model.SellerID("AARON"), model.NormalizeSeller("  aaron "))
}
