package services

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrPizzaNotFound       = errors.New("pizza not found")
	ErrSizeNotFound        = errors.New("size not found")
	ErrToppingNotFound     = errors.New("topping not found")
	ErrSaleNotFound        = errors.New("sale not found")
	ErrSaleAlreadyRecorded = errors.New("sale already recorded for order")
	ErrInvalidAmount       = errors.New("topping amount must be a non-negative integer")
	ErrDuplicateTopping    = errors.New("topping listed more than once")
	ErrInvalidCustomer     = errors.New("first and last name are required")
	ErrStaffExists         = errors.New("staff member already exists")
	ErrClientNotFound      = errors.New("client not found")
)
