// Package event defines the synthetic user/event record written by zspawn.
// Wire field names match the files consumed by the downstream pipeline.
package event

import (
	"fmt"
	"net/netip"
	"slices"
)

// field bounds, inclusive
const (
	MinUserID      = 1
	MaxUserID      = 100
	MinProductID   = 1
	MaxProductID   = 100
	MinQuantity    = 1
	MaxQuantity    = 5
	MinStockID     = 1
	MaxStockID     = 100
	MinStockNumber = 10
	MaxStockNumber = 100
)

// Pages is the closed set of app pages an event can occur on.
var Pages = []string{
	"home",
	"products",
	"product_details",
	"cart",
	"checkout",
	"profile",
}

// Actions is the closed set of user actions.
var Actions = []string{
	"view_page",
	"click_link",
	"add_to_cart",
	"remove_from_cart",
	"checkout",
	"purchase",
}

// Sexes is the closed set of profile sexes.
var Sexes = []string{"Male", "Female"}

// UserProfile is the fabricated user half of a record.
type UserProfile struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Sex       string  `json:"sex"`
	Address   string  `json:"address"`
	IP        string  `json:"ip"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InteractionEvent is the fabricated app interaction half of a record.
type InteractionEvent struct {
	Timestamp   int64  `json:"timestamp"`
	Page        string `json:"page"`
	Action      string `json:"action"`
	ProductID   int    `json:"product_id"`
	Quantity    int    `json:"quantity"`
	StockID     int    `json:"estoque_id"`
	StockNumber int    `json:"estoque_id_number"`
	Price       Price  `json:"price"`
}

// Record pairs one user with one event. It is the unit written per file.
type Record struct {
	User  UserProfile      `json:"user"`
	Event InteractionEvent `json:"event"`
}

// Validate reports the first field that falls outside its documented range
// or closed set.
func (r Record) Validate() error {
	u, e := r.User, r.Event

	if err := inRange("user.id", u.ID, MinUserID, MaxUserID); err != nil {
		return err
	}
	if u.Name == "" {
		return fmt.Errorf("user.name: empty")
	}
	if !slices.Contains(Sexes, u.Sex) {
		return fmt.Errorf("user.sex: %q not in %v", u.Sex, Sexes)
	}
	if addr, err := netip.ParseAddr(u.IP); err != nil || !addr.Is4() {
		return fmt.Errorf("user.ip: %q is not an ipv4 address", u.IP)
	}
	if u.Latitude < -90 || u.Latitude > 90 {
		return fmt.Errorf("user.latitude: %v out of range", u.Latitude)
	}
	if u.Longitude < -180 || u.Longitude > 180 {
		return fmt.Errorf("user.longitude: %v out of range", u.Longitude)
	}

	if !slices.Contains(Pages, e.Page) {
		return fmt.Errorf("event.page: %q not in %v", e.Page, Pages)
	}
	if !slices.Contains(Actions, e.Action) {
		return fmt.Errorf("event.action: %q not in %v", e.Action, Actions)
	}
	if err := inRange("event.product_id", e.ProductID, MinProductID, MaxProductID); err != nil {
		return err
	}
	if err := inRange("event.quantity", e.Quantity, MinQuantity, MaxQuantity); err != nil {
		return err
	}
	if err := inRange("event.estoque_id", e.StockID, MinStockID, MaxStockID); err != nil {
		return err
	}
	if err := inRange("event.estoque_id_number", e.StockNumber, MinStockNumber, MaxStockNumber); err != nil {
		return err
	}
	if !e.Price.Valid() {
		return fmt.Errorf("event.price: %s out of range", e.Price)
	}

	return nil
}

func inRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s: %d not in [%d, %d]", field, v, lo, hi)
	}
	return nil
}
