// README: Availability slot definitions.
package availability

import "greentours/internal/types"

// Slot is one bookable departure time. There is no reservation ledger in
// this core, so Remaining always reports the full capacity.
type Slot struct {
	Time      string      `json:"time"`
	Available bool        `json:"available"`
	Price     types.Money `json:"price"`
	Capacity  int         `json:"capacity"`
	Remaining int         `json:"remaining"`
}

// Day is the availability answer for one route/service/date.
type Day struct {
	RouteID   string `json:"route_id"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Slots     []Slot `json:"slots"`
}
