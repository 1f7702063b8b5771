// Package jsondoc decodes dataset documents of the form
// {"categories": {...}, "frequent": [...]}.
package jsondoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"datacat/internal/domain"
)

// MaxCategoryDepth bounds how deeply category objects may nest.
const MaxCategoryDepth = 256

var (
	ErrNotObject       = errors.New("dataset document is not a JSON object")
	ErrCategoryTooDeep = fmt.Errorf("category tree nested deeper than %d levels", MaxCategoryDepth)
)

// Decode reads one document from r. Unknown top-level keys are skipped and
// missing sections decode as empty.
func Decode(r io.Reader) (*domain.Document, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	doc := &domain.Document{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read document key: %w", err)
		}
		key, _ := tok.(string)

		switch key {
		case "categories":
			tree, err := decodeCategories(dec)
			if err != nil {
				return nil, err
			}
			doc.Categories = tree
		case "frequent":
			var records []domain.Record
			if err := dec.Decode(&records); err != nil {
				return nil, fmt.Errorf("failed to decode frequent: %w", err)
			}
			doc.Frequent = records
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("failed to skip %q: %w", key, err)
			}
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read document end: %w", err)
	}
	return doc, nil
}

// decodeCategories walks the categories object token by token. Each open
// object pushes the slice its keys append to; keys keep document order.
func decodeCategories(dec *json.Decoder) (domain.CategoryTree, error) {
	var tree domain.CategoryTree

	tok, err := dec.Token()
	if err != nil {
		return tree, fmt.Errorf("failed to read categories: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		// Anything but an object means no categories.
		if err := skipRest(dec, tok); err != nil {
			return tree, err
		}
		return tree, nil
	}

	stack := []*[]*domain.CategoryNode{&tree.Roots}
	for len(stack) > 0 {
		tok, err := dec.Token()
		if err != nil {
			return tree, fmt.Errorf("failed to read categories: %w", err)
		}

		if d, ok := tok.(json.Delim); ok && d == '}' {
			stack = stack[:len(stack)-1]
			continue
		}
		name, ok := tok.(string)
		if !ok {
			return tree, fmt.Errorf("unexpected token %v in categories", tok)
		}

		node := &domain.CategoryNode{Name: name}
		siblings := stack[len(stack)-1]
		*siblings = append(*siblings, node)

		val, err := dec.Token()
		if err != nil {
			return tree, fmt.Errorf("failed to read category %q: %w", name, err)
		}
		if d, ok := val.(json.Delim); ok && d == '{' {
			if len(stack) >= MaxCategoryDepth {
				return tree, ErrCategoryTooDeep
			}
			stack = append(stack, &node.Children)
			continue
		}
		if err := skipRest(dec, val); err != nil {
			return tree, err
		}
	}
	return tree, nil
}

// skipRest consumes the remainder of a value whose first token was first.
func skipRest(dec *json.Decoder, first json.Token) error {
	d, ok := first.(json.Delim)
	if !ok || d == '}' || d == ']' {
		return nil
	}

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to skip value: %w", err)
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
