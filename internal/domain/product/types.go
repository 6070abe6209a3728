package product

import "auction-market/internal/pkg/errs"

var ErrInvalidType = errs.New("invalid product type")
var ErrInvalidStatus = errs.New("invalid product status")

type Type string

const (
	TypeDirect  Type = "DIRECT"
	TypeAuction Type = "AUCTION"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeDirect, TypeAuction:
		return Type(s), nil
	}
	return "", ErrInvalidType
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusSold     Status = "SOLD"
	StatusBanned   Status = "BANNED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusSold, StatusBanned:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}
