// Package nav derives role-aware navigation targets for the header menus.
package nav

import "github.com/elsonbaty123/wagbty2/models"

// Icon names understood by the client icon set
const (
	IconPerson  = "person"
	IconShield  = "shield"
	IconBicycle = "bicycle"
)

// Item is a navigation destination: path, icon name, and i18n label key.
type Item struct {
	Path  string `json:"path"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Dashboard maps a user's role to their dashboard entry. A nil user points
// at login; unknown roles fall back to the customer case.
func Dashboard(user *models.User) Item {
	if user == nil {
		return Item{Path: "/login", Icon: IconPerson, Label: "my_orders_title"}
	}
	switch user.Role {
	case models.RoleAdmin:
		return Item{Path: "/admin/dashboard", Icon: IconShield, Label: "admin_dashboard"}
	case models.RoleChef:
		return Item{Path: "/chef/dashboard", Icon: IconPerson, Label: "dashboard"}
	case models.RoleDelivery:
		return Item{Path: "/delivery/dashboard", Icon: IconBicycle, Label: "delivery_dashboard"}
	}
	return Item{Path: "/profile", Icon: IconPerson, Label: "my_orders_title"}
}
