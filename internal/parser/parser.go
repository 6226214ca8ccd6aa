package parser

import (
	"errors"
)

// ErrParseNotImplemented is returned by a BaseParser without a ParseFunc.
var ErrParseNotImplemented = errors.New("parse function not implemented")

// Parser converts raw strings into values of type T.
type Parser[T any] interface {
	Parse(value string) (T, error)
	// Validate applies constraints that hold after a successful Parse.
	Validate(value T) error
	ParseAndValidate(value string) (T, error)
}

// BaseParser implements Parser from a pair of functions.
// A nil ValidateFunc accepts every parsed value.
type BaseParser[T any] struct {
	ParseFunc    func(string) (T, error)
	ValidateFunc func(T) error
}

func (p *BaseParser[T]) Parse(value string) (T, error) {
	if p.ParseFunc == nil {
		var zero T
		return zero, ErrParseNotImplemented
	}
	return p.ParseFunc(value)
}

func (p *BaseParser[T]) Validate(value T) error {
	if p.ValidateFunc != nil {
		return p.ValidateFunc(value)
	}
	return nil
}

func (p *BaseParser[T]) ParseAndValidate(value string) (v T, err error) {
	if v, err = p.Parse(value); err == nil {
		err = p.Validate(v)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
