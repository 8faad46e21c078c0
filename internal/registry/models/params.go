package models

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidParam indicates a lookup parameter failed validation.
var ErrInvalidParam = errors.New("invalid lookup parameter")

// NameParam is the name part of a name-based lookup.
type NameParam struct {
	FirstNames string `json:"first_names"`
	LastName   string `json:"last_name"`
}

// NewNameParam builds a NameParam, e.g. NewNameParam("Karius", "Davidsen").
func NewNameParam(firstNames, lastName string) NameParam {
	return NameParam{FirstNames: strings.TrimSpace(firstNames), LastName: strings.TrimSpace(lastName)}
}

func (n NameParam) Validate() error {
	if n.FirstNames == "" {
		return errors.Join(ErrInvalidParam, errors.New("first names are required"))
	}
	if n.LastName == "" {
		return errors.Join(ErrInvalidParam, errors.New("last name is required"))
	}
	return nil
}

func (n NameParam) String() string {
	return n.FirstNames + " " + n.LastName
}

// HouseNumber is a house number with an optional letter suffix (16, 16A).
type HouseNumber struct {
	Number int    `json:"number"`
	Letter string `json:"letter,omitempty"`
}

func NewHouseNumber(number int) HouseNumber {
	return HouseNumber{Number: number}
}

func NewHouseNumberWithLetter(number int, letter string) HouseNumber {
	return HouseNumber{Number: number, Letter: strings.ToUpper(strings.TrimSpace(letter))}
}

func (h HouseNumber) IsZero() bool {
	return h.Number == 0 && h.Letter == ""
}

func (h HouseNumber) String() string {
	if h.IsZero() {
		return ""
	}
	return strconv.Itoa(h.Number) + h.Letter
}

// AddressParam is the address part of a name-and-address lookup.
type AddressParam struct {
	Street      string      `json:"street"`
	HouseNumber HouseNumber `json:"house_number"`
	City        string      `json:"city"`
}

// NewAddressParam builds an AddressParam, e.g. NewAddressParam("Úti í Bø", NewHouseNumber(16), "Syðrugøta").
func NewAddressParam(street string, number HouseNumber, city string) AddressParam {
	return AddressParam{Street: strings.TrimSpace(street), HouseNumber: number, City: strings.TrimSpace(city)}
}

func (a AddressParam) Validate() error {
	if a.Street == "" {
		return errors.Join(ErrInvalidParam, errors.New("street is required"))
	}
	if a.HouseNumber.Number < 0 {
		return errors.Join(ErrInvalidParam, errors.New("house number must not be negative"))
	}
	if a.City == "" {
		return errors.Join(ErrInvalidParam, errors.New("city is required"))
	}
	return nil
}
