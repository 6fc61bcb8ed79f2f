package models

import "time"

// InterfaceStatus is the admin or operational state of an interface.
type InterfaceStatus string

const (
	InterfaceUp   InterfaceStatus = "up"
	InterfaceDown InterfaceStatus = "down"
)

// Interface is a network interface owned by a Device. Ownership is carried
// by DeviceID (a foreign key), never by a direct reference, so interfaces
// can be adapted independently of device adaptation order.
type Interface struct {
	ID          string          `json:"id"`
	DeviceID    string          `json:"device_id"`
	Index       int             `json:"index"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	MACAddress  string          `json:"mac_address,omitempty"`
	Speed       int64           `json:"speed,omitempty"` // kbit/s, as reported upstream
	Duplex      string          `json:"duplex,omitempty"`
	AdminStatus InterfaceStatus `json:"admin_status"`
	OperStatus  InterfaceStatus `json:"oper_status"`
	VLANID      int             `json:"vlan_id,omitempty"`
	Links       []string        `json:"links"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
