// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Price is a fixed-point amount with two decimal places, held in cents.
// JSON renders it as a string ("23.96") and accepts a string or a number.
type Price int64

// MaxPrice is the largest price with five significant digits.
const MaxPrice Price = 99999

var (
	ErrInvalidPrice   = errors.New("a valid number is required")
	ErrPricePrecision = errors.New("ensure that there are no more than 2 decimal places")
)

// ParsePrice parses a decimal string such as "5", "5.5" or "-0.25".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, ErrInvalidPrice
	}
	if !isDigits(whole) || (hasFrac && !isDigits(frac)) {
		return 0, ErrInvalidPrice
	}
	if len(frac) > 2 {
		return 0, ErrPricePrecision
	}
	if len(whole) > 15 {
		return 0, ErrInvalidPrice
	}

	var units int64
	if whole != "" {
		u, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, ErrInvalidPrice
		}
		units = u
	}

	frac = (frac + "00")[:2]
	cents, _ := strconv.ParseInt(frac, 10, 64)

	p := Price(units*100 + cents)
	if neg {
		p = -p
	}
	return p, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return int64(p)
}

func (p Price) String() string {
	sign := ""
	v := int64(p)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Price) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return ErrInvalidPrice
	}
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(b, &raw); err != nil {
			return ErrInvalidPrice
		}
	}

	parsed, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Scan reads the integer cents column.
func (p *Price) Scan(value any) error {
	switch v := value.(type) {
	case int64:
		*p = Price(v)
	case int32:
		*p = Price(v)
	case int:
		*p = Price(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("scan price: %w", err)
		}
		*p = Price(n)
	case nil:
		*p = 0
	default:
		return fmt.Errorf("scan price: unsupported type %T", value)
	}
	return nil
}

// Value stores the price as integer cents.
func (p Price) Value() (driver.Value, error) {
	return int64(p), nil
}
