package domain

import "errors"

var (
	ErrZeroTerm           = errors.New("term must be at least one month")
	ErrTermTooLong        = errors.New("term exceeds 50 years")
	ErrInvalidTenureUnit  = errors.New("tenure unit must be years or months")
	ErrUnsupportedVATRate = errors.New("vat rate must be 0, 5 or 15")
	ErrInvalidDirection   = errors.New("calculation type must be add or remove")
	ErrInvalidHousingType = errors.New("housing allowance type must be percentage or fixed")
	ErrInvalidNationality = errors.New("nationality must be saudi or expat")
	ErrZeroPropertyValue  = errors.New("property value must be greater than zero")
	ErrNoInvoiceItems     = errors.New("invoice has no items")
	ErrTooManyItems       = errors.New("invoice has too many items")
	ErrEmptyChart         = errors.New("nothing to chart")
	ErrArticleNotFound    = errors.New("article not found")
	ErrResultOutOfRange   = errors.New("inputs are too large to calculate")
)
