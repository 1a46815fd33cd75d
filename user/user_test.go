package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Toufiq-trt/toufiqsBALANCING/inventory"
	"github.com/Toufiq-trt/toufiqsBALANCING/user"
)

func TestCanMutate(t *testing.T) {
	debit := inventory.CategoryDebitCard

	tests := []struct {
		name     string
		u        user.User
		category inventory.Category
		want     bool
	}{
		{
			name:     "super admin touches any category",
			u:        user.User{Role: user.RoleSuperAdmin},
			category: inventory.CategoryPIN,
			want:     true,
		},
		{
			name:     "plain user touches nothing",
			u:        user.User{Role: user.RoleUser},
			category: inventory.CategoryDebitCard,
			want:     false,
		},
		{
			name:     "category admin within scope",
			u:        user.User{Role: user.RoleDebitAdmin, AllowedCategory: &debit},
			category: inventory.CategoryDebitCard,
			want:     true,
		},
		{
			name:     "category admin outside scope",
			u:        user.User{Role: user.RoleDebitAdmin, AllowedCategory: &debit},
			category: inventory.CategoryChequeBook,
			want:     false,
		},
		{
			name:     "admin without provisioned category",
			u:        user.User{Role: user.RolePINAdmin},
			category: inventory.CategoryPIN,
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.u.CanMutate(tt.category))
		})
	}
}
