package node_test

import (
	"time"

	"github.com/google/uuid"

	"table-binder/primitive"
)

type Status int

const (
	StatusPending Status = iota
	StatusActive
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusClosed:
		return "Closed"
	default:
		return "Pending"
	}
}

func (Status) EnumMembers() []primitive.Enum {
	return []primitive.Enum{StatusPending, StatusActive, StatusClosed}
}

type Address struct {
	City string
	Zip  *int
}

type Line struct {
	Sku string
	Qty int
}

type Customer struct {
	Name     string
	Address  Address
	Billing  *Address
	Tags     []string
	Scores   [3]int
	Lines    []Line
	Items    []*Line
	Slots    [2]Line
	Codes    [2]string
	Labels   map[string]string
	Limits   map[int]float64
	Groups   map[string]*Line
	Refs     map[string]Line
	Status   Status
	Previous *Status
	ID       uuid.UUID
	Since    time.Time
	Version  int `table:",readonly"`
	Nested   [][]string
	Callback func()
}

type Audit struct {
	Ref string
	Rev int `table:",readonly"`
}

type Shipment struct {
	*Audit
	Name string
}
