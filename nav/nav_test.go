package nav

import (
	"testing"

	"github.com/elsonbaty123/wagbty2/models"

	"github.com/stretchr/testify/assert"
)

func TestDashboard(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want Item
	}{
		{
			name: "guest points at login",
			user: nil,
			want: Item{Path: "/login", Icon: IconPerson, Label: "my_orders_title"},
		},
		{
			name: "admin",
			user: &models.User{Role: models.RoleAdmin},
			want: Item{Path: "/admin/dashboard", Icon: IconShield, Label: "admin_dashboard"},
		},
		{
			name: "chef",
			user: &models.User{Role: models.RoleChef},
			want: Item{Path: "/chef/dashboard", Icon: IconPerson, Label: "dashboard"},
		},
		{
			name: "delivery",
			user: &models.User{Role: models.RoleDelivery},
			want: Item{Path: "/delivery/dashboard", Icon: IconBicycle, Label: "delivery_dashboard"},
		},
		{
			name: "customer",
			user: &models.User{Role: models.RoleCustomer},
			want: Item{Path: "/profile", Icon: IconPerson, Label: "my_orders_title"},
		},
		{
			name: "unknown role falls back to the customer entry",
			user: &models.User{Role: models.UserRole("intern")},
			want: Item{Path: "/profile", Icon: IconPerson, Label: "my_orders_title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dashboard(tt.user))
		})
	}
}
