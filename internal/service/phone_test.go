package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifadigital/raffle/internal/service"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare national number gets country code", "987654321", "51987654321", true},
		{"already prefixed passes through", "51987654321", "51987654321", true},
		{"formatting stripped", "+51 987-654-321", "51987654321", true},
		{"ten digits pass through unchanged", "0987654321", "0987654321", true},
		{"too few digits", "abc12", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.NormalizePhone(tt.in)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, service.ErrInvalidPhone)
			}
		})
	}
}
